package v1

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/citypark/parking-api/internal/domain"
	"github.com/citypark/parking-api/internal/service"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)

	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id uint, patch domain.UserPatch) (domain.User, error) {
	args := m.Called(ctx, id, patch)

	return args.Get(0).(domain.User), args.Error(1)
}

func setupUserRouter(svc UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewUserHandler(svc)
	router.GET("/users", handler.HandleListUsers)
	router.POST("/users", handler.HandleCreateUser)
	router.PUT("/users/:userID", handler.HandleUpdateUser)

	return router
}

func TestHandleListUsers(t *testing.T) {
	users := []domain.User{
		{ID: 1, Name: "Khalid", Email: "khalid@example.com", PhoneNumber: "555-0101", Address: "1 Main St", RegistrationNo: "REG-001"},
	}

	svc := new(mockUserService)
	svc.On("ListUsers", mock.Anything).Return(users, nil)

	router := setupUserRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"user_id": 1, "user_name": "Khalid", "email": "khalid@example.com", "phone_number": "555-0101", "address": "1 Main St", "registration_no": "REG-001"}
	]`, w.Body.String())
}

func TestHandleCreateUser(t *testing.T) {
	created := domain.User{
		ID:             3,
		Name:           "Khalid",
		Email:          "khalid@example.com",
		PhoneNumber:    "555-0101",
		Address:        "1 Main St",
		RegistrationNo: "REG-001",
	}

	svc := new(mockUserService)
	svc.On("CreateUser", mock.Anything, mock.Anything).Return(created, nil)

	router := setupUserRouter(svc)

	body := bytes.NewBufferString(`{
		"user_name": "Khalid",
		"email": "khalid@example.com",
		"phone_number": "555-0101",
		"address": "1 Main St",
		"registration_no": "REG-001"
	}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"User created successfully.","user_id":3}`, w.Body.String())
}

func TestHandleCreateUser_MissingField(t *testing.T) {
	svc := new(mockUserService)
	router := setupUserRouter(svc)

	// No explicit validation existed in the legacy API, so a missing
	// field maps to 500, not 400.
	body := bytes.NewBufferString(`{"user_name": "Khalid"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestHandleUpdateUser_PartialPatch(t *testing.T) {
	svc := new(mockUserService)
	svc.On("UpdateUser", mock.Anything, uint(5), mock.MatchedBy(func(patch domain.UserPatch) bool {
		return patch.Email != nil && *patch.Email == "new@example.com" &&
			patch.Name == nil && patch.PhoneNumber == nil &&
			patch.Address == nil && patch.RegistrationNo == nil
	})).Return(domain.User{ID: 5, Email: "new@example.com"}, nil)

	router := setupUserRouter(svc)

	body := bytes.NewBufferString(`{"email":"new@example.com"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/5", body)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User updated successfully."}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandleUpdateUser_NotFound(t *testing.T) {
	svc := new(mockUserService)
	svc.On("UpdateUser", mock.Anything, uint(42), mock.Anything).
		Return(domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrUserNotFound))

	router := setupUserRouter(svc)

	body := bytes.NewBufferString(`{"email":"new@example.com"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/42", body)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found."}`, w.Body.String())
}

func TestHandleUpdateUser_BadID(t *testing.T) {
	svc := new(mockUserService)
	router := setupUserRouter(svc)

	body := bytes.NewBufferString(`{"email":"new@example.com"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/abc", body)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

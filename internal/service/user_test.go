package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/citypark/parking-api/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)

	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)

	return args.Get(0).(domain.User), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func TestUserService_UpdateUser_AppliesOnlySuppliedFields(t *testing.T) {
	existing := domain.User{
		ID:             5,
		Name:           "Khalid",
		Email:          "khalid@example.com",
		PhoneNumber:    "555-0101",
		Address:        "1 Main St",
		RegistrationNo: "REG-001",
	}
	merged := existing
	merged.Email = "new@example.com"

	repo := new(mockUserRepo)
	repo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	repo.On("Update", mock.Anything, merged).Return(merged, nil)

	svc := NewUserService(repo)

	updated, err := svc.UpdateUser(context.Background(), 5, domain.UserPatch{
		Email: strPtr("new@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, merged, updated)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateUser_EmptyPatchKeepsRecord(t *testing.T) {
	existing := domain.User{
		ID:    5,
		Name:  "Khalid",
		Email: "khalid@example.com",
	}

	repo := new(mockUserRepo)
	repo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(existing, nil)

	svc := NewUserService(repo)

	updated, err := svc.UpdateUser(context.Background(), 5, domain.UserPatch{})

	require.NoError(t, err)
	assert.Equal(t, existing, updated)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByID", mock.Anything, uint(42)).Return(domain.User{}, ErrUserNotFound)

	svc := NewUserService(repo)

	_, err := svc.UpdateUser(context.Background(), 42, domain.UserPatch{})

	assert.ErrorIs(t, err, ErrUserNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser(t *testing.T) {
	user := domain.User{
		Name:           "Khalid",
		Email:          "khalid@example.com",
		PhoneNumber:    "555-0101",
		Address:        "1 Main St",
		RegistrationNo: "REG-001",
	}
	created := user
	created.ID = 1

	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, user).Return(created, nil)

	svc := NewUserService(repo)

	got, err := svc.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)
}

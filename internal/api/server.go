package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/citypark/parking-api/docs"
	v1 "github.com/citypark/parking-api/internal/api/handler/v1"
	"github.com/citypark/parking-api/internal/api/middleware"
	"github.com/citypark/parking-api/internal/config"
	"github.com/citypark/parking-api/internal/repository"
	"github.com/citypark/parking-api/internal/repository/dao"
	"github.com/citypark/parking-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	parkingHandler := s.initParkingHandler(db)
	userHandler := s.initUserHandler(db)
	s.MountHandlers(parkingHandler, userHandler)

	return s
}

func (s *Server) initParkingHandler(db *gorm.DB) *v1.ParkingHandler {
	parkingDAO := dao.NewParkingDAO(db)
	repo := repository.NewParkingRepository(parkingDAO)
	svc := service.NewParkingService(repo)
	handler := v1.NewParkingHandler(svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(parkingHandler *v1.ParkingHandler, userHandler *v1.UserHandler) {
	// Routes live at the root; the paths are the public contract of the
	// legacy parking API.
	s.Router.GET("/parking_lot", parkingHandler.HandleGetParkingLot)
	s.Router.POST("/park_car", parkingHandler.HandleParkCar)
	s.Router.DELETE("/remove_car_by_ticket", parkingHandler.HandleRemoveCarByTicket)

	s.Router.GET("/users", userHandler.HandleListUsers)
	s.Router.POST("/users", userHandler.HandleCreateUser)
	s.Router.PUT("/users/:userID", userHandler.HandleUpdateUser)

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Parking Service API"
	docs.SwaggerInfo.Description = "CRUD API for a parking facility: floors, rows, slots, users and tickets."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

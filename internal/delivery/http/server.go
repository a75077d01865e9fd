package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/config"
	"github.com/geography-microservice/internal/delivery/http/handler"
	"github.com/geography-microservice/internal/delivery/http/middleware"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/pkg/metrics"
	"github.com/geography-microservice/internal/pkg/utils"
)

// Handlers - обработчики HTTP сервера
type Handlers struct {
	Coordinate                *handler.CoordinateHandler
	GeographyObject           *handler.GeographyObjectHandler
	GeographyObjectCoordinate *handler.GeographyObjectCoordinateHandler
	Health                    *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app       *fiber.App
	config    *config.Config
	logger    *zap.Logger
	handlers  Handlers
	apiLogger repository.StreamRepository
}

// NewServer - создание нового HTTP сервера. apiLogger может быть nil: журнал запросов не пишется.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	apiLogger repository.StreamRepository,
) *Server {
	s := &Server{
		app:       NewApp(logger),
		config:    cfg,
		logger:    logger,
		handlers:  handlers,
		apiLogger: apiLogger,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// NewApp создает fiber-приложение с общими настройками сервиса
func NewApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:                  "Geography Microservice",
		ReadTimeout:              10 * time.Second,
		WriteTimeout:             10 * time.Second,
		IdleTimeout:              60 * time.Second,
		EnableSplittingOnParsers: true,
		ErrorHandler:             customErrorHandler(logger),
	})
}

// App возвращает fiber-приложение (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	if s.apiLogger != nil {
		s.app.Use(middleware.APILog(s.apiLogger, s.logger))
	}
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	s.app.Get("/health", s.handlers.Health.Health)

	auth := middleware.Username()

	coordinates := s.app.Group("/coordinates")
	coordinates.Get("/list", s.handlers.Coordinate.GetList)
	coordinates.Post("/add", auth, s.handlers.Coordinate.Add)
	coordinates.Post("/edit", auth, s.handlers.Coordinate.Edit)
	coordinates.Post("/close", auth, s.handlers.Coordinate.Close)
	coordinates.Post("/restore", auth, s.handlers.Coordinate.Restore)

	s.app.Get("/coordinates_types/list", s.handlers.Coordinate.GetTypes)

	objects := s.app.Group("/geography_objects")
	objects.Get("/list", s.handlers.GeographyObject.GetList)
	objects.Get("/list_with_coordinates", s.handlers.GeographyObject.GetListWithCoordinates)
	objects.Post("/close", auth, s.handlers.GeographyObject.Close)
	objects.Post("/restore", auth, s.handlers.GeographyObject.Restore)

	s.app.Get("/geography_objects_types/list", s.handlers.GeographyObject.GetTypes)

	links := s.app.Group("/geography_objects_coordinates")
	links.Get("/list", s.handlers.GeographyObjectCoordinate.GetListByObject)
	links.Get("/by_geography_object_id", s.handlers.GeographyObjectCoordinate.GetListByGeographyObjectID)
	links.Post("/upgrade", auth, s.handlers.GeographyObjectCoordinate.Upgrade)
	links.Post("/add", auth, s.handlers.GeographyObjectCoordinate.Add)
	links.Post("/close", auth, s.handlers.GeographyObjectCoordinate.Close)
	links.Post("/restore", auth, s.handlers.GeographyObjectCoordinate.Restore)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок: ошибки fiber (404, 405, тело) отдаются
// со своим статусом, остальное - общей ошибкой 500
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			logger.Warn("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", e.Code),
				zap.Error(err),
			)
			c.Locals(utils.LocalsErrorMessage, e.Message)
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Success: false,
				Message: e.Message,
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, errors.ErrInternalServer)
	}
}

package config

import (
	"AnatomyOverlay/database/postgres"
	anatomyHandler "AnatomyOverlay/internal/api/anatomy/handler"
	anatomyRepository "AnatomyOverlay/internal/api/anatomy/repository"
	anatomyService "AnatomyOverlay/internal/api/anatomy/service"
	assetHandler "AnatomyOverlay/internal/api/asset/handler"
	assetService "AnatomyOverlay/internal/api/asset/service"
	rigHandler "AnatomyOverlay/internal/api/rig/handler"
	rigService "AnatomyOverlay/internal/api/rig/service"
	"AnatomyOverlay/internal/entity"
	"AnatomyOverlay/internal/middleware"
	"AnatomyOverlay/pkg/gemini"
	"AnatomyOverlay/pkg/openai"
	"AnatomyOverlay/pkg/partapi"
	"AnatomyOverlay/pkg/redis"
	"AnatomyOverlay/pkg/s3"
	websocketPkg "AnatomyOverlay/pkg/websocket"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	db            *sqlx.DB
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	handlers      []handler
	redisServer   redis.IRedis
	geminiClient  gemini.IGemini
	chatGPTClient openai.IChatGPT
	partAPIClient partapi.IPartAPI
	s3Client      s3.ItfS3
	detector      websocketPkg.IDetector
	viewport      entity.Viewport
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.viewport.Aspect == 0 {
		vp, err := rigService.ViewportFromEnv()
		if err != nil {
			return nil, err
		}
		server.viewport = vp
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithViewport sets the projection defaults for rig evaluation. Without it
// they come from the RIG_* environment keys.
func WithViewport(vp entity.Viewport) ServerOption {
	return func(s *Server) error {
		s.viewport = vp
		return nil
	}
}

// The backend options below are optional. A backend that cannot be set up is
// logged and left nil; the features that need it answer 503 instead.

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			s.warn("database", err)
			return nil
		}
		s.db = db
		return nil
	}
}

func WithRedisServer() ServerOption {
	return func(s *Server) error {
		client, err := redis.New()
		if err != nil {
			s.warn("redis", err)
			return nil
		}
		s.redisServer = client
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			s.warn("s3", err)
			return nil
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			s.warn("gemini", err)
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithChatGPTClient() ServerOption {
	return func(s *Server) error {
		client, err := openai.NewChatGPT()
		if err != nil {
			s.warn("openai", err)
			return nil
		}
		s.chatGPTClient = client
		return nil
	}
}

func WithPartAPIClient() ServerOption {
	return func(s *Server) error {
		client, err := partapi.New()
		if err != nil {
			s.warn("part api", err)
			return nil
		}
		s.partAPIClient = client
		return nil
	}
}

func WithLandmarkDetector() ServerOption {
	return func(s *Server) error {
		detector, err := websocketPkg.NewDetector()
		if err != nil {
			s.warn("landmark detector", err)
			return nil
		}
		s.detector = detector
		return nil
	}
}

func (s *Server) warn(backend string, err error) {
	if s.log == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"backend": backend,
		"error":   err.Error(),
	}).Warn("Backend not configured, continuing without it")
}

func (s *Server) RegisterHandler() {
	backends := anatomyService.Backends{
		Cache:     s.redisServer,
		Generator: s.geminiClient,
		ChatGPT:   s.chatGPTClient,
		PartAPI:   s.partAPIClient,
	}
	if s.db != nil {
		backends.Repository = anatomyRepository.New(s.db, s.log)
	}

	// Anatomy Domain
	anatomyServices := anatomyService.New(s.log, backends)
	anatomyHandlers := anatomyHandler.New(s.log, s.validator, s.middleware, anatomyServices)

	// Rig Domain
	rigServices := rigService.New(s.log, s.detector, anatomyServices, s.viewport)
	rigHandlers := rigHandler.New(s.log, s.validator, s.middleware, rigServices)

	// Asset Domain
	assetServices := assetService.New(s.log, s.s3Client, s.redisServer)
	assetHandlers := assetHandler.New(s.log, s.middleware, assetServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, anatomyHandlers, rigHandlers, assetHandlers)
}

// Mount wires middleware and handlers onto the engine without listening.
func (s *Server) Mount() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewAccessLogger())

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Run() error {
	s.Mount()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	err := s.engine.Shutdown()

	if s.geminiClient != nil {
		s.geminiClient.Close()
	}
	if s.db != nil {
		if dbErr := s.db.Close(); dbErr != nil && err == nil {
			err = dbErr
		}
	}
	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		backends := fiber.Map{
			"database": s.db != nil,
			"redis":    s.redisServer != nil,
			"s3":       s.s3Client != nil,
			"gemini":   s.geminiClient != nil,
			"openai":   s.chatGPTClient != nil,
			"partApi":  s.partAPIClient != nil,
			"detector": s.detector != nil,
		}

		return ctx.JSON(fiber.Map{
			"message":  "Server is Healthy!",
			"backends": backends,
		})
	})
}

package handlers

import (
	"LinkBoard/internal/config"
	"LinkBoard/internal/graph"
	"LinkBoard/internal/middleware"
	"LinkBoard/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	linkService *service.LinkService,
	postService *service.PostService,
	imageService *service.ImageService,
	logger *zap.SugaredLogger,
	config *config.Config,
) (*Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// GraphQL-схема над сервисами
	schema, err := graph.NewSchema(graph.NewResolver(linkService, postService, imageService))
	if err != nil {
		return nil, err
	}

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	gqlHandler := NewGraphQLHandler(schema, logger, config)
	imageHandler := NewImageHandler(imageService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	// GraphQL API
	r.Post("/graphql", gqlHandler.Serve)

	// Раздача сохранённых картинок
	r.Get("/api/images/{id}", imageHandler.Download)

	return &Handler{Router: r}, nil
}

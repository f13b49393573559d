package main

import (
	"LinkBoard/internal/config"
	"LinkBoard/internal/handlers"
	"LinkBoard/internal/middleware"
	"LinkBoard/internal/repo"
	"LinkBoard/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	linkRepo := repo.NewLinkRepository(gormDB)
	postRepo := repo.NewPostRepository(gormDB)
	imageRepo := repo.NewImageRepository(gormDB)

	userService := service.NewUserService(userRepo)
	linkService := service.NewLinkService(linkRepo)
	imageService := service.NewImageService(imageRepo)
	postService := service.NewPostService(postRepo, imageService)

	h, err := handlers.NewHandler(userService, linkService, postService, imageService, sugar, cfg)
	if err != nil {
		sugar.Fatalw("failed to build handlers", "error", err)
	}

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

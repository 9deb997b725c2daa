package main

import (
	"log"
	"net/http"

	"github.com/gpng/thursday-bot/cmd/api/config"
	"github.com/gpng/thursday-bot/cmd/api/handlers"
	"github.com/gpng/thursday-bot/services/logger"
	"github.com/gpng/thursday-bot/services/telegram"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load env vars: %v", err)
	}

	// initialise services
	l := logger.New(cfg.Debug)
	defer l.Sync()

	bot := telegram.New(cfg.TelegramAPIURL, cfg.TelegramTimeout)

	handlers := handlers.New(l, bot, cfg.BotToken)

	// initialise main router with basic middlewares
	router := mainRouter()

	// mount services
	router.Mount("/", handlers.Routes())

	l.Info("listening", zap.String("port", cfg.Port))
	err = http.ListenAndServe(":"+cfg.Port, router)
	if err != nil {
		l.Error("server stopped", zap.Error(err))
	}
}

func mainRouter() chi.Router {
	router := chi.NewRouter()

	// A good base middleware stack
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	return router
}

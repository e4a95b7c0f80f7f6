package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dmarin/tasko/internal/config"
	"github.com/dmarin/tasko/internal/database"
	postgresrepo "github.com/dmarin/tasko/internal/repository/postgres"
	"github.com/dmarin/tasko/internal/service"
	"github.com/dmarin/tasko/internal/transport/http/handlers"
	"github.com/dmarin/tasko/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	// Database
	if err := database.Migrate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	activityRepo := postgresrepo.NewActivityRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	activityService := service.NewActivityService(activityRepo)
	profileService := service.NewProfileService(userRepo, activityRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	activityHandler := handlers.NewActivityHandler(activityService)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)

	// Protected - Activities
	mux.Handle("POST /activities", auth(http.HandlerFunc(activityHandler.Create)))
	mux.Handle("GET /activities", auth(http.HandlerFunc(activityHandler.List)))
	mux.Handle("PUT /activities", auth(http.HandlerFunc(activityHandler.Update)))
	mux.Handle("DELETE /activities", auth(http.HandlerFunc(activityHandler.Delete)))

	// Protected - Profile
	mux.Handle("GET /user-data", auth(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PUT /user-data", auth(http.HandlerFunc(profileHandler.Update)))
	mux.Handle("DELETE /user-data", auth(http.HandlerFunc(profileHandler.Delete)))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}

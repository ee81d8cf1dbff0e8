// Entry point of the to-do backend. Initializes configuration, the database
// pool and migrations, the services and handlers, sets up the HTTP router
// and middleware, and runs the server with graceful shutdown.
//
// @title To-Do API
// @version 1.0
// @description Multi-user to-do list backend with JWT authentication and ownership-scoped resources.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/todo-go/auth"
	"github.com/user/todo-go/config"
	"github.com/user/todo-go/db"
	_ "github.com/user/todo-go/docs" // generated Swagger docs
	"github.com/user/todo-go/httputil"
	"github.com/user/todo-go/items"
	"github.com/user/todo-go/lists"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, cfg.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	tokenService := auth.NewTokenService(*cfg.Auth)
	authService := auth.NewService(pool, tokenService)
	authHandlers := auth.NewHandlers(authService)

	listService := lists.NewService(pool)
	listHandlers := lists.NewHandlers(listService)

	itemService := items.NewService(pool)
	itemHandlers := items.NewHandlers(itemService)

	requireAuth := auth.Middleware(tokenService, authService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", authHandlers.HandleMe())
		})
	})

	r.Route("/api/lists", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", listHandlers.HandleCreate())
		r.Get("/", listHandlers.HandleList())
		r.Get("/{id}", listHandlers.HandleGet())
		r.Put("/{id}", listHandlers.HandleUpdate())
		r.Delete("/{id}", listHandlers.HandleDelete())
		r.Post("/{id}/items", itemHandlers.HandleCreate())
		r.Get("/{id}/items", itemHandlers.HandleList())
	})

	r.Route("/api/items", func(r chi.Router) {
		r.Use(requireAuth)
		r.Put("/{id}", itemHandlers.HandleUpdate())
		r.Delete("/{id}", itemHandlers.HandleDelete())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	log.Println("server stopped gracefully")
}

package main

import (
	"context"
	"log"
	"strings"

	"github.com/bookwyrm/backend/internal/config"
	"github.com/bookwyrm/backend/internal/db"
	"github.com/bookwyrm/backend/internal/handler"
	"github.com/bookwyrm/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Book Catalog API
// @version 1.0
// @description CRUD over users and books behind bearer-token authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pg, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pg.Close()

	if err := pg.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	authService, err := service.NewAuthService(pg, cfg.Auth)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}
	userService := service.NewUserService(pg, authService.Hasher())
	bookService := service.NewBookService(pg)

	seeded, err := userService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatalf("admin seed: %v", err)
	}
	if seeded {
		log.Printf("seeded admin account %q", cfg.Admin.Username)
	} else if cfg.Admin.Username == "" {
		log.Printf("no admin seed configured; token issuance requires an existing account")
	}

	router := gin.Default()
	if origins := splitOrigins(cfg.CORS.AllowedOrigins); len(origins) > 0 {
		router.Use(handler.CORSMiddleware(origins))
	}

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(bookService)
	authRequired := handler.AuthMiddleware(authService)

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	router.POST("/auth/login", authHandler.Login)

	users := router.Group("/users", authRequired)
	{
		users.POST("", userHandler.Create)
		users.PUT("/:id/password", userHandler.UpdatePassword)
		users.DELETE("/:id", userHandler.Delete)
	}

	books := router.Group("/books")
	{
		books.GET("", bookHandler.List)
		books.GET("/search", bookHandler.Search)
		books.GET("/:id", bookHandler.Get)
		books.POST("", authRequired, bookHandler.Create)
		books.PUT("/:id", authRequired, bookHandler.Update)
		books.DELETE("/:id", authRequired, bookHandler.Delete)
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}

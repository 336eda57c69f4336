package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/config"
	dbpkg "github.com/Tony-Muriuki/Good-Doctor-Backend/internal/db"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/middleware"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/routes"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/session"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	sessions := session.NewManager(newSessionStore(cfg), cfg.SecretKey, cfg.SessionTTL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, sessions)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return session.NewRedisStore(client, cfg.SessionTTL)
}

// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/your-org/cart-backend/internal/config"
	"github.com/your-org/cart-backend/internal/infrastructure/database/mongo"
	"github.com/your-org/cart-backend/internal/infrastructure/database/redis"
	"github.com/your-org/cart-backend/internal/interfaces/http"
	"github.com/your-org/cart-backend/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to the document store. A failed ping is logged but does not
	// stop the process: requests fail individually until the store returns.
	db, err := mongo.NewConnection(cfg)
	if err != nil {
		logg.Fatalf("Failed to create document store client: %v", err)
	}
	defer db.Close()

	if err := db.Health(); err != nil {
		logg.Warnf("Document store unreachable, continuing: %v", err)
	}

	// Connect to Redis. Rate limiting degrades open without it.
	var redisConn *redis.Client
	redisConn, err = redis.NewConnection(cfg)
	if err != nil {
		logg.Warnf("Redis unreachable, rate limiting disabled: %v", err)
		redisConn = nil
	} else {
		defer redisConn.Close()
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, logg, db.Database(), redisClientOrNil(redisConn))

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logg.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down gracefully")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logg.Info("Server shutdown completed")
}

func redisClientOrNil(conn *redis.Client) *goredis.Client {
	if conn == nil {
		return nil
	}
	return conn.GetClient()
}

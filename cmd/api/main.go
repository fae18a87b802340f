package main

import (
	"fmt"
	"time"

	"reminders-backend/configs"
	"reminders-backend/internal/access"
	v1 "reminders-backend/internal/api/v1"
	"reminders-backend/internal/api/v1/handlers"
	"reminders-backend/internal/auth"
	"reminders-backend/internal/events"
	"reminders-backend/internal/middleware"
	"reminders-backend/internal/repository"
	"reminders-backend/internal/store"
	"reminders-backend/pkg/database"
	"reminders-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

func main() {
	// Inisialisasi logger
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	// Load config
	cfg := configs.LoadConfig()

	// Inisialisasi database
	db := database.ConnectDB(cfg)
	defer db.Close()
	logger.SystemLogger.Info("Database Connected")

	// Buat tabel jika belum ada
	repository.CreateTableIfNotExists(db)

	// Inisialisasi Redis
	redisClient := database.ConnectRedis(cfg)
	defer redisClient.Close()

	// Rakit dependency sekali di sini, lalu dioper ke handler.
	dataStore := store.New(db)
	gate := auth.NewGate(dataStore, time.Duration(cfg.TokenTTLHours)*time.Hour)
	resolver := access.NewResolver(dataStore)

	// Hub WebSocket untuk notifikasi perubahan list/task
	hub := events.NewHub()
	go hub.Run()

	handler := handlers.New(dataStore, gate, resolver, redisClient, hub)

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Daftarkan route API v1
	v1.RegisterRoutes(app, handler)

	// WebSocket event stream
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		client := &events.Client{Conn: c}
		hub.Register <- client
		defer func() {
			hub.Unregister <- client
		}()
		// Baca terus sampai koneksi ditutup; event dikirim oleh hub
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	logger.SystemLogger.Info("Application ready", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}

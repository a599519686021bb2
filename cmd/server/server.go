package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/fbrandt/pigeon/internal/broadcast"
	"github.com/fbrandt/pigeon/internal/config"
	"github.com/fbrandt/pigeon/internal/database"
	"github.com/fbrandt/pigeon/internal/handlers"
	"github.com/fbrandt/pigeon/internal/middleware"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Hub    *broadcast.Hub
	Redis  *redis.Client
	Config config.Config
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg := config.Load()

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	hub := broadcast.NewHub()
	go hub.Run()

	// The hub alone serves a single process; with redis configured, publishes
	// relay through redis so every process sees every topic.
	var broadcaster broadcast.Broadcaster = hub
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}

		bridge := broadcast.NewRedisBridge(rdb, hub)
		go bridge.Run()
		broadcaster = bridge
	}

	notifier := handlers.NewNotifier(broadcaster)

	userH := handlers.NewUserHandler(dbConn)
	conversationH := handlers.NewConversationHandler(dbConn)
	messageH := handlers.NewMessageHandler(dbConn, notifier)
	wsH := handlers.NewWebSocketHandler(hub)

	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigin))
	APIEndpoints(router, userH, conversationH, messageH, wsH)

	return &Server{
		Router: router,
		DB:     dbConn,
		Hub:    hub,
		Redis:  rdb,
		Config: cfg,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}

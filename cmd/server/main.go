package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jsoldo/chitter/internal/config"
	"github.com/jsoldo/chitter/internal/database"
	postgresrepo "github.com/jsoldo/chitter/internal/repository/postgres"
	"github.com/jsoldo/chitter/internal/service"
	"github.com/jsoldo/chitter/internal/transport/http/handlers"
	"github.com/jsoldo/chitter/internal/transport/http/middleware"
	"github.com/jsoldo/chitter/internal/transport/ws"
	"github.com/jsoldo/chitter/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("database connect", zap.Error(err))
	}
	defer pool.Close()
	log.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	cheetRepo := postgresrepo.NewCheetRepo(pool)
	replyRepo := postgresrepo.NewReplyRepo(pool)
	messageRepo := postgresrepo.NewMessageRepo(pool)
	convRepo := postgresrepo.NewConversationRepo(pool)
	followRepo := postgresrepo.NewFollowRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	cheetService := service.NewCheetService(cheetRepo)
	replyService := service.NewReplyService(replyRepo, cheetRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)
	convService := service.NewConversationService(convRepo)
	followService := service.NewFollowService(followRepo, userRepo)

	// WebSocket hub
	hub := ws.NewHub(log)
	go hub.Run()
	messageService.SetNotifier(ws.NewHubNotifier(hub, log))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	userHandler := handlers.NewUserHandler(userService, followService, log)
	cheetHandler := handlers.NewCheetHandler(cheetService, log)
	replyHandler := handlers.NewReplyHandler(replyService, log)
	messageHandler := handlers.NewMessageHandler(messageService, log)
	convHandler := handlers.NewConversationHandler(convService, log)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Cheets (read endpoints work without a session, session enriches the feed)
	mux.Handle("GET /api/v1/cheets", optionalAuth(http.HandlerFunc(cheetHandler.List)))
	mux.Handle("POST /api/v1/cheets", auth(http.HandlerFunc(cheetHandler.Create)))
	mux.Handle("PATCH /api/v1/cheets/{id}", auth(http.HandlerFunc(cheetHandler.Update)))
	mux.Handle("DELETE /api/v1/cheets/{id}", auth(http.HandlerFunc(cheetHandler.Delete)))
	mux.Handle("GET /api/v1/cheets/{id}/replies", optionalAuth(http.HandlerFunc(replyHandler.List)))
	mux.Handle("POST /api/v1/cheets/{id}/replies", auth(http.HandlerFunc(replyHandler.Create)))

	// Users
	mux.Handle("GET /api/v1/users", optionalAuth(http.HandlerFunc(userHandler.Search)))
	mux.Handle("GET /api/v1/users/{username}", optionalAuth(http.HandlerFunc(userHandler.GetProfile)))
	mux.Handle("POST /api/v1/users/{id}/follow", auth(http.HandlerFunc(userHandler.Follow)))
	mux.Handle("DELETE /api/v1/users/{id}/follow", auth(http.HandlerFunc(userHandler.Unfollow)))

	// Direct messages
	mux.Handle("POST /api/v1/users/{id}/messages", auth(http.HandlerFunc(messageHandler.Send)))
	mux.Handle("GET /api/v1/users/{id}/messages", auth(http.HandlerFunc(messageHandler.List)))
	mux.Handle("POST /api/v1/users/{id}/messages/read", auth(http.HandlerFunc(messageHandler.Read)))
	mux.Handle("DELETE /api/v1/messages/{id}", auth(http.HandlerFunc(messageHandler.Delete)))

	// Conversations
	mux.Handle("GET /api/v1/conversations", auth(http.HandlerFunc(convHandler.List)))

	// WebSocket
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret, log))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, middleware.CORS(mux)); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}

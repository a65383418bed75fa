package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mstead/pantry/internal/catalog"
	"github.com/mstead/pantry/internal/chatbot"
	"github.com/mstead/pantry/internal/handler"
	"github.com/mstead/pantry/internal/middleware"
	"github.com/mstead/pantry/internal/store"
	ws "github.com/mstead/pantry/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	groceryH    *handler.GroceryHandler
	categoryH   *handler.CategoryHandler
	insightH    *handler.InsightHandler
	chatbotH    *handler.ChatbotHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, cat *catalog.Catalog, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	groceryStore := store.NewGroceryStore(db)
	bot := chatbot.NewBot(groceryStore)

	return &Server{
		db:          db,
		hub:         hub,
		groceryH:    handler.NewGroceryHandler(groceryStore, cat, hub, logger.With("component", "grocery")),
		categoryH:   handler.NewCategoryHandler(cat),
		insightH:    handler.NewInsightHandler(groceryStore, logger.With("component", "insight")),
		chatbotH:    handler.NewChatbotHandler(bot, hub, logger.With("component", "chatbot")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /grocery-list", s.groceryH.List)
	mux.HandleFunc("POST /grocery-list", s.groceryH.Create)
	mux.HandleFunc("DELETE /grocery-list/{name}", s.groceryH.Delete)

	mux.HandleFunc("GET /categories", s.categoryH.List)
	mux.HandleFunc("GET /categories/{category}", s.categoryH.Items)

	mux.HandleFunc("GET /suggestions/missing", s.insightH.Missing)
	mux.HandleFunc("GET /suggestions/healthier", s.insightH.Healthier)
	mux.HandleFunc("GET /reminders/expiry", s.insightH.Expiry)

	mux.HandleFunc("POST /purchase", s.groceryH.Purchase)
	mux.HandleFunc("POST /chatbot", s.rateLimitedHandler(s.chatbotH.Chat))

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(middleware.CORS()(mux))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 30, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

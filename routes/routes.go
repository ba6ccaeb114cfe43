package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Emberalive/laptop-chatbot/chat"
	"github.com/Emberalive/laptop-chatbot/controllers"
	"github.com/Emberalive/laptop-chatbot/middleware"
)

func InitRouter() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint for container health checks
	r.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "laptop-chatbot-api",
		})
	})).Methods(http.MethodGet)

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or local defaults
	origins := []string{
		"http://localhost:3000", "http://localhost:8080",
		"http://127.0.0.1:3000", "http://127.0.0.1:8080",
	}
	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "X-Request-ID", "X-ADMIN-KEY"}),
			handlers.AllowCredentials(),
		)(next)
	})

	api := r.PathPrefix("/api").Subrouter()

	// Auth actions get a tighter per-IP budget than the chat path
	authLimiter := middleware.NewIPRateLimiter(60, time.Minute)
	chatLimiter := middleware.NewIPRateLimiter(120, time.Minute)

	chatController := controllers.NewChatController(chat.NewEngineClient(""))

	api.Handle("/chat", chatLimiter.Middleware(http.HandlerFunc(chatController.SendMessage))).Methods(http.MethodPost)
	api.Handle("/db", authLimiter.Middleware(http.HandlerFunc(controllers.DBHandler))).Methods(http.MethodPost)
	api.Handle("/search-laptops", http.HandlerFunc(controllers.SearchLaptopsHandler)).Methods(http.MethodPost)
	api.Handle("/laptop-details", http.HandlerFunc(controllers.LaptopDetailsHandler)).Methods(http.MethodPost)

	// Catalog image upload (operational, key-protected)
	api.Handle("/laptop-image", middleware.AdminKeyMiddleware(http.HandlerFunc(controllers.UploadLaptopImageHandler))).Methods(http.MethodPost)

	return r
}

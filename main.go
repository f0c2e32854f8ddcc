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

	"yatra/backend"
	"yatra/chatbot"
	"yatra/itinerary"
	"yatra/ratelim"
	"yatra/routes"
	"yatra/session"
	"yatra/views"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// setupRouter builds the router with all routes except chat.
// The chat routes are added separately in main to avoid passing hub around globally.
func setupRouter(h *views.Handlers, sessions *session.Store, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddStaticRoutes(router)
	routes.AddPageRoutes(router, h, sessions)
	routes.AddAuthRoutes(router, h, sessions, rateLimiter)
	routes.AddItineraryRoutes(router, h, sessions)
	routes.AddProfileRoutes(router, h, sessions)
	routes.AddIdentifyRoutes(router, h, sessions, rateLimiter)
	routes.AddAdminRoutes(router, h, sessions)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	publicURL := os.Getenv("PUBLIC_URL")
	if publicURL == "" {
		publicURL = "http://localhost" + port
	}

	rateLimiter := ratelim.NewRateLimiter()

	api := backend.FromEnv()
	sessionTTL := 12 * time.Hour
	sessions := session.NewStore(api, session.RedisStorage{}, sessionTTL)
	itineraries := itinerary.NewRegistry(api, sessionTTL)

	handlers, err := views.NewHandlers(api, sessions, itineraries, publicURL)
	if err != nil {
		log.Fatalf("❌ Template setup failed: %v", err)
	}

	// initialize chat hub
	hub := chatbot.NewHub()
	go hub.Run()

	// build router and add chat routes with hub
	router := setupRouter(handlers, sessions, rateLimiter)
	routes.AddChatRoutes(router, hub, api, sessions)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{publicURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("🛑 Shutting down chat hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("🚀 Serving on %s (backend %s)", port, api.BaseURL())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}

package routes

import (
	"net/http"

	"yatra/backend"
	"yatra/chatbot"
	"yatra/middleware"
	"yatra/ratelim"
	"yatra/session"
	"yatra/views"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/*filepath", http.Dir("static"))
}

func AddPageRoutes(router *httprouter.Router, h *views.Handlers, sessions *session.Store) {
	router.GET("/", middleware.WithSession(sessions, h.Home))
	router.GET("/attractions", middleware.WithSession(sessions, h.Attractions))
	router.GET("/attractions/:id", middleware.WithSession(sessions, h.AttractionDetail))
	router.GET("/festivals", middleware.WithSession(sessions, h.Festivals))
	router.GET("/festivals/:id", middleware.WithSession(sessions, h.FestivalDetail))
	router.GET("/chat", middleware.WithSession(sessions, h.ChatPage))
	router.NotFound = http.HandlerFunc(h.NotFound)
}

func AddAuthRoutes(router *httprouter.Router, h *views.Handlers, sessions *session.Store, rateLimiter *ratelim.RateLimiter) {
	router.GET("/auth", middleware.WithSession(sessions, h.AuthPage))
	router.POST("/login", rateLimiter.Limit(middleware.WithSession(sessions, h.Login)))
	router.POST("/register", rateLimiter.Limit(middleware.WithSession(sessions, h.Register)))
	router.POST("/logout", middleware.WithSession(sessions, h.Logout))
}

func AddItineraryRoutes(router *httprouter.Router, h *views.Handlers, sessions *session.Store) {
	router.GET("/itinerary", middleware.WithSession(sessions, h.ItineraryPage))
	router.GET("/itinerary/pdf", middleware.RequireAuth(sessions, h.ItineraryPDF))
	router.POST("/itinerary/add", middleware.RequireAuth(sessions, h.ItineraryAdd))
	router.POST("/itinerary/remove/:id", middleware.RequireAuth(sessions, h.ItineraryRemove))
}

func AddProfileRoutes(router *httprouter.Router, h *views.Handlers, sessions *session.Store) {
	router.GET("/profile", middleware.WithSession(sessions, h.ProfilePage))
	router.GET("/profile-setup", middleware.WithSession(sessions, h.ProfileSetupPage))
	router.POST("/profile", middleware.RequireAuth(sessions, h.ProfileUpdate))
}

func AddIdentifyRoutes(router *httprouter.Router, h *views.Handlers, sessions *session.Store, rateLimiter *ratelim.RateLimiter) {
	router.GET("/identify", middleware.WithSession(sessions, h.IdentifyPage))
	router.POST("/identify", rateLimiter.Limit(middleware.WithSession(sessions, h.IdentifyUpload)))
}

func AddAdminRoutes(router *httprouter.Router, h *views.Handlers, sessions *session.Store) {
	router.GET("/admin", middleware.RequireAdmin(sessions, h.AdminPage))
	router.POST("/admin/attractions", middleware.RequireAdmin(sessions, h.AdminAttractionSave))
	router.POST("/admin/attractions/:id/delete", middleware.RequireAdmin(sessions, h.AdminAttractionDelete))
	router.POST("/admin/festivals", middleware.RequireAdmin(sessions, h.AdminFestivalSave))
	router.POST("/admin/festivals/:id/delete", middleware.RequireAdmin(sessions, h.AdminFestivalDelete))
}

func AddChatRoutes(router *httprouter.Router, hub *chatbot.Hub, api *backend.Client, sessions *session.Store) {
	router.GET("/ws/chat", chatbot.WebSocketHandler(hub, api, sessions))
}

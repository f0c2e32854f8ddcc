package views

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"

	"yatra/backend"
	"yatra/itinerary"
	"yatra/models"
	"yatra/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handlers renders every page of the web client. It owns nothing
// itself: session state and the itinerary mirrors live in the stores
// injected from main, and all content comes from the backend client.
type Handlers struct {
	api         *backend.Client
	sessions    *session.Store
	itineraries *itinerary.Registry
	publicURL   string
	tmpl        *template.Template
}

func NewHandlers(api *backend.Client, sessions *session.Store, itineraries *itinerary.Registry, publicURL string) (*Handlers, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handlers{
		api:         api,
		sessions:    sessions,
		itineraries: itineraries,
		publicURL:   publicURL,
		tmpl:        tmpl,
	}, nil
}

// page is the envelope every template receives.
type page struct {
	Title   string
	Session *models.Session
	Notice  string
	Data    any
}

// render buffers the template so a mid-render failure becomes a 500
// instead of a half-written page.
func (h *Handlers) render(w http.ResponseWriter, name string, p page) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, p); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// notice maps a backend failure to the transient message a page shows.
// Every taxonomy branch ends in copy text; nothing crashes a page.
func notice(err error) string {
	var verr *backend.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, backend.ErrNetwork):
		return "Cannot reach the server, please try again"
	case errors.Is(err, backend.ErrAuth):
		return "Please log in first"
	case errors.Is(err, backend.ErrForbidden):
		return "You are not allowed to do that"
	case errors.Is(err, backend.ErrNotFound):
		return "Not found"
	case errors.Is(err, backend.ErrDuplicate):
		return "Already added"
	case errors.As(err, &verr):
		return verr.Message
	default:
		return "Something went wrong, please try again"
	}
}

package middleware

import (
	"context"
	"net/http"

	"yatra/globals"
	"yatra/models"
	"yatra/session"

	"github.com/julienschmidt/httprouter"
)

// WithSession resolves the browser session once per request and stores
// it in the context. It never blocks a request: guests flow through
// with a guest session.
func WithSession(store *session.Store, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess := store.Current(r.Context(), r)
		ctx := context.WithValue(r.Context(), globals.SessionKey, sess)
		next(w, r.WithContext(ctx), ps)
	}
}

// SessionFromContext returns the resolved session, or a guest session
// on routes that skipped WithSession.
func SessionFromContext(ctx context.Context) *models.Session {
	if sess, ok := ctx.Value(globals.SessionKey).(*models.Session); ok && sess != nil {
		return sess
	}
	return &models.Session{Role: models.RoleGuest}
}

// RequireAdmin gates admin pages. Anything but an admin role bounces
// to home. This is a UX convenience only: the backend independently
// rejects non-admin tokens on every admin endpoint.
func RequireAdmin(store *session.Store, next httprouter.Handle) httprouter.Handle {
	return WithSession(store, func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess := SessionFromContext(r.Context())
		if sess.CurrentRole() != models.RoleAdmin {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r, ps)
	})
}

// RequireAuth gates user-only actions (not whole pages; most pages
// render for guests). It answers 401 so the page can show an inline
// login prompt instead of navigating away.
func RequireAuth(store *session.Store, next httprouter.Handle) httprouter.Handle {
	return WithSession(store, func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess := SessionFromContext(r.Context())
		if !sess.LoggedIn() {
			http.Error(w, `{"error":"Please log in first"}`, http.StatusUnauthorized)
			return
		}
		next(w, r, ps)
	})
}

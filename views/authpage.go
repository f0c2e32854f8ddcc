package views

import (
	"errors"
	"net/http"

	"yatra/backend"
	"yatra/middleware"
	"yatra/models"

	"github.com/julienschmidt/httprouter"
)

type authData struct {
	Mode  string // "login" or "register"
	Email string
	Err   string
}

func (h *Handlers) AuthPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFromContext(r.Context())
	if sess.LoggedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	mode := r.URL.Query().Get("mode")
	if mode != "register" {
		mode = "login"
	}
	h.render(w, "auth", page{Title: "Sign In", Session: sess, Data: authData{Mode: mode}})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	creds := models.Credentials{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	sess, err := h.sessions.Login(r.Context(), w, creds)
	if err != nil {
		h.render(w, "auth", page{
			Title:   "Sign In",
			Session: middleware.SessionFromContext(r.Context()),
			Data:    authData{Mode: "login", Email: creds.Email, Err: authNotice(err)},
		})
		return
	}
	if sess.CurrentRole() == models.RoleAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reg := models.Registration{
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		AdminCode: r.FormValue("admin_code"),
	}
	_, err := h.sessions.Register(r.Context(), w, reg)
	if err != nil {
		h.render(w, "auth", page{
			Title:   "Sign In",
			Session: middleware.SessionFromContext(r.Context()),
			Data:    authData{Mode: "register", Email: reg.Email, Err: notice(err)},
		})
		return
	}
	// New accounts land on the interests form first.
	http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
}

// authNotice rewords rejections for the login form: a 401 here means
// the credentials were wrong, not that the visitor forgot to log in,
// and a 404 means the account does not exist.
func authNotice(err error) string {
	switch {
	case errors.Is(err, backend.ErrAuth):
		return "Incorrect email or password"
	case errors.Is(err, backend.ErrNotFound):
		return "No account found with that email"
	default:
		return notice(err)
	}
}

// Logout clears local state only and always lands on the login view.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := h.sessions.Current(r.Context(), r)
	h.itineraries.Drop(sess.ID)
	h.sessions.Logout(r.Context(), w, r)
	http.Redirect(w, r, "/auth", http.StatusSeeOther)
}

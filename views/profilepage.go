package views

import (
	"errors"
	"net/http"

	"yatra/backend"
	"yatra/middleware"
	"yatra/models"
	"yatra/normalize"
	"yatra/utils"

	"github.com/julienschmidt/httprouter"
)

type profileData struct {
	Profile     *models.UserProfile
	Recommended []models.AttractionRef
	Err         string
}

// ProfilePage shows the account plus interest-matched suggestions.
// Guests get the page with its login prompt, not a redirect.
func (h *Handlers) ProfilePage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	p := page{Title: "Profile", Session: sess}
	if !sess.LoggedIn() {
		h.render(w, "profile", p)
		return
	}

	prof, err := h.api.Me(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, backend.ErrAuth) {
			h.sessions.Clear(ctx, sess)
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
			return
		}
		p.Data = profileData{Err: notice(err)}
		h.render(w, "profile", p)
		return
	}

	data := profileData{Profile: prof}
	// Recommendations degrade silently; the profile is the page.
	if recs, err := h.api.Recommendations(ctx, sess.Token); err == nil {
		data.Recommended = normalize.Attractions(recs.Recommendations)
	}
	p.Data = data
	h.render(w, "profile", p)
}

func (h *Handlers) ProfileSetupPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFromContext(r.Context())
	p := page{Title: "Profile Setup", Session: sess}
	if sess.LoggedIn() {
		if prof, err := h.api.Me(r.Context(), sess.Token); err == nil {
			p.Data = profileData{Profile: prof}
		}
	}
	h.render(w, "profile_setup", p)
}

// ProfileUpdate saves bio and interests; interests arrive as one
// comma-separated field.
func (h *Handlers) ProfileUpdate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	bio := r.FormValue("bio")
	interests := utils.SplitTags(r.FormValue("interests"))

	if err := h.api.UpdateProfile(ctx, sess.Token, bio, interests); err != nil {
		h.mutationError(w, r, sess, err)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

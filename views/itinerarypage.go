package views

import (
	"errors"
	"net/http"

	"yatra/backend"
	"yatra/itinerary"
	"yatra/middleware"
	"yatra/models"
	"yatra/utils"

	"github.com/julienschmidt/httprouter"
)

type itineraryData struct {
	Entries []models.ItineraryEntry
	Err     string
}

// ItineraryPage renders the saved list. Guests see the page with a
// login prompt; a rejected token clears the session and lands on the
// login view — there is no refresh to attempt.
func (h *Handlers) ItineraryPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	p := page{Title: "My Itinerary", Session: sess}
	if !sess.LoggedIn() {
		h.render(w, "itinerary", p)
		return
	}

	store := h.itineraries.ForSession(sess.ID)
	entries, err := store.Load(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, backend.ErrAuth) {
			h.sessions.Clear(ctx, sess)
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
			return
		}
		p.Data = itineraryData{Err: notice(err)}
		h.render(w, "itinerary", p)
		return
	}

	p.Data = itineraryData{Entries: entries}
	h.render(w, "itinerary", p)
}

// ItineraryAdd confirms with the server before anything changes
// locally; the page's pending state ends when this responds.
func (h *Handlers) ItineraryAdd(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	attractionID := r.FormValue("attraction_id")
	if attractionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	store := h.itineraries.ForSession(sess.ID)
	if err := store.Add(ctx, sess.Token, attractionID); err != nil {
		h.mutationError(w, r, sess, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "message": "Added to itinerary"})
}

func (h *Handlers) ItineraryRemove(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	store := h.itineraries.ForSession(sess.ID)
	if err := store.Remove(ctx, sess.Token, ps.ByName("id")); err != nil {
		h.mutationError(w, r, sess, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "message": "Removed from itinerary"})
}

// ItineraryPDF streams the current mirror as a travel plan.
func (h *Handlers) ItineraryPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	store := h.itineraries.ForSession(sess.ID)
	entries, err := store.Load(ctx, sess.Token)
	if err != nil {
		h.mutationError(w, r, sess, err)
		return
	}

	pdf, err := itinerary.BuildPDF(entries, h.publicURL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="My_Itinerary.pdf"`)
	_, _ = w.Write(pdf)
}

// mutationError converts a failed confirmed mutation into the JSON the
// page's fetch shows as a dismissible notice. A 401 also downgrades
// the session so the next page load lands on /auth.
func (h *Handlers) mutationError(w http.ResponseWriter, r *http.Request, sess *models.Session, err error) {
	switch {
	case errors.Is(err, backend.ErrAuth):
		if sess.LoggedIn() {
			h.sessions.Clear(r.Context(), sess)
		}
		utils.RespondWithError(w, http.StatusUnauthorized, notice(err))
	case errors.Is(err, backend.ErrDuplicate):
		utils.RespondWithError(w, http.StatusBadRequest, notice(err))
	case errors.Is(err, backend.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, notice(err))
	case errors.Is(err, backend.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, notice(err))
	case errors.Is(err, backend.ErrNetwork):
		utils.RespondWithError(w, http.StatusBadGateway, notice(err))
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, notice(err))
	}
}

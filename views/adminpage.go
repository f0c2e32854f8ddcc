package views

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"yatra/admin"
	"yatra/backend"
	"yatra/middleware"
	"yatra/models"
	"yatra/normalize"
	"yatra/utils"

	"github.com/julienschmidt/httprouter"
)

type adminData struct {
	Dashboard   *admin.Dashboard
	Attractions []models.AttractionRef
	Festivals   []models.FestivalRef
	Err         string
}

// AdminPage sits behind RequireAdmin, but the local role only gates the
// route; the backend check inside admin.Load is the real authority.
func (h *Handlers) AdminPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	dash, err := admin.Load(ctx, h.api, sess.Token)
	if err != nil {
		if errors.Is(err, backend.ErrAuth) {
			h.sessions.Clear(ctx, sess)
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
			return
		}
		if errors.Is(err, backend.ErrForbidden) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.render(w, "admin", page{Title: "Dashboard", Session: sess, Data: adminData{Err: notice(err)}})
		return
	}

	data := adminData{Dashboard: dash}
	// Management lists degrade independently of the analytics half.
	if raw, err := h.api.ListAttractions(ctx); err == nil {
		data.Attractions = normalize.Attractions(raw)
	}
	if raw, err := h.api.ListFestivals(ctx); err == nil {
		data.Festivals = normalize.Festivals(raw)
	}

	h.render(w, "admin", page{Title: "Dashboard", Session: sess, Data: data})
}

// AdminAttractionSave creates or updates depending on whether the form
// carried an id. The form fields mirror what the content API stores.
func (h *Handlers) AdminAttractionSave(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	doc := attractionDoc(r)
	if doc["name"] == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	id := r.FormValue("id")
	var err error
	if id == "" {
		_, err = h.api.CreateAttraction(ctx, sess.Token, doc)
	} else {
		err = h.api.UpdateAttraction(ctx, sess.Token, id, doc)
	}
	if err != nil {
		h.mutationError(w, r, sess, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handlers) AdminAttractionDelete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	if err := h.api.DeleteAttraction(ctx, sess.Token, ps.ByName("id")); err != nil {
		h.mutationError(w, r, sess, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "message": "Attraction deleted"})
}

func (h *Handlers) AdminFestivalSave(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	doc := map[string]any{
		"name":        strings.TrimSpace(r.FormValue("name")),
		"date":        r.FormValue("date"),
		"location":    r.FormValue("location"),
		"description": r.FormValue("description"),
		"image":       r.FormValue("image"),
	}
	if doc["name"] == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	id := r.FormValue("id")
	var err error
	if id == "" {
		_, err = h.api.CreateFestival(ctx, sess.Token, doc)
	} else {
		err = h.api.UpdateFestival(ctx, sess.Token, id, doc)
	}
	if err != nil {
		h.mutationError(w, r, sess, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handlers) AdminFestivalDelete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)

	if err := h.api.DeleteFestival(ctx, sess.Token, ps.ByName("id")); err != nil {
		h.mutationError(w, r, sess, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "message": "Festival deleted"})
}

func attractionDoc(r *http.Request) map[string]any {
	doc := map[string]any{
		"name":        strings.TrimSpace(r.FormValue("name")),
		"category":    r.FormValue("category"),
		"description": r.FormValue("description"),
		"best_season": r.FormValue("best_season"),
		"map_url":     r.FormValue("map_url"),
		"tags":        utils.SplitTags(r.FormValue("tags")),
	}
	if imgs := utils.SplitTags(r.FormValue("images")); len(imgs) > 0 {
		doc["images"] = imgs
	}
	if score, err := strconv.Atoi(r.FormValue("eco_score")); err == nil {
		doc["eco_score"] = score
	}
	return doc
}

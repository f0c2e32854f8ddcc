package views

import (
	"context"
	"net/http"
	"sync"

	"yatra/middleware"
	"yatra/models"
	"yatra/normalize"

	"github.com/julienschmidt/httprouter"
)

type homeData struct {
	Featured      []models.AttractionRef
	Festivals     []models.FestivalRef
	AttractionErr string
	FestivalErr   string
}

// Home fetches both lists in parallel; a failing half degrades to its
// own notice without blocking the other.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	var (
		wg            sync.WaitGroup
		rawAttr       []map[string]any
		rawFest       []map[string]any
		attrErr, fErr error
	)
	wg.Add(2)
	go func() { defer wg.Done(); rawAttr, attrErr = h.cachedAttractions(ctx) }()
	go func() { defer wg.Done(); rawFest, fErr = h.cachedFestivals(ctx) }()
	wg.Wait()

	data := homeData{
		AttractionErr: notice(attrErr),
		FestivalErr:   notice(fErr),
	}
	if attrErr == nil {
		data.Featured = normalize.Attractions(rawAttr)
		if len(data.Featured) > 6 {
			data.Featured = data.Featured[:6]
		}
	}
	if fErr == nil {
		data.Festivals = normalize.Festivals(rawFest)
		if len(data.Festivals) > 3 {
			data.Festivals = data.Festivals[:3]
		}
	}

	h.render(w, "home", page{
		Title:   "Explore Karnataka",
		Session: middleware.SessionFromContext(ctx),
		Data:    data,
	})
}

type listData struct {
	Attractions []models.AttractionRef
	Festivals   []models.FestivalRef
	Err         string
}

func (h *Handlers) Attractions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	raw, err := h.cachedAttractions(r.Context())
	data := listData{Err: notice(err)}
	if err == nil {
		data.Attractions = normalize.Attractions(raw)
	}
	h.render(w, "attractions", page{
		Title:   "Attractions",
		Session: middleware.SessionFromContext(r.Context()),
		Data:    data,
	})
}

func (h *Handlers) Festivals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	raw, err := h.cachedFestivals(r.Context())
	data := listData{Err: notice(err)}
	if err == nil {
		data.Festivals = normalize.Festivals(raw)
	}
	h.render(w, "festivals", page{
		Title:   "Festivals",
		Session: middleware.SessionFromContext(r.Context()),
		Data:    data,
	})
}

type attractionDetailData struct {
	Attraction  models.AttractionRef
	InItinerary bool
	Err         string
}

// AttractionDetail loads one attraction, falling back to a list scan
// when the id the backend stored differs from the one routed.
func (h *Handlers) AttractionDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	sess := middleware.SessionFromContext(ctx)
	id := ps.ByName("id")

	raw, err := h.api.GetAttraction(ctx, id)
	if err != nil {
		if found, ok := h.scanAttractions(ctx, id); ok {
			raw, err = found, nil
		}
	}
	if err != nil {
		h.render(w, "attraction_detail", page{
			Title:   "Attraction",
			Session: sess,
			Data:    attractionDetailData{Err: notice(err)},
		})
		return
	}

	ref := normalize.Attraction(raw, id)
	data := attractionDetailData{Attraction: ref}
	if sess.LoggedIn() && ref.CanonicalID != "" {
		store := h.itineraries.ForSession(sess.ID)
		if !store.Loaded() {
			// Best effort; the button state degrades to "add".
			_, _ = store.Load(ctx, sess.Token)
		}
		data.InItinerary = store.Contains(ref.CanonicalID)
	}

	h.render(w, "attraction_detail", page{Title: ref.Name, Session: sess, Data: data})
}

// scanAttractions is the degraded lookup: fetch the whole list and
// match the route id against the canonical form of each record.
func (h *Handlers) scanAttractions(ctx context.Context, id string) (map[string]any, bool) {
	raw, err := h.cachedAttractions(ctx)
	if err != nil {
		return nil, false
	}
	for _, rec := range raw {
		if normalize.CanonicalID(rec, "") == id {
			return rec, true
		}
	}
	return nil, false
}

type festivalDetailData struct {
	Festival models.FestivalRef
	Err      string
}

func (h *Handlers) FestivalDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	raw, err := h.api.GetFestival(r.Context(), id)
	data := festivalDetailData{Err: notice(err)}
	title := "Festival"
	if err == nil {
		data.Festival = normalize.Festival(raw, id)
		title = data.Festival.Name
	}
	h.render(w, "festival_detail", page{
		Title:   title,
		Session: middleware.SessionFromContext(r.Context()),
		Data:    data,
	})
}

// ChatPage hosts the assistant; the conversation itself runs over the
// websocket relay.
func (h *Handlers) ChatPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.render(w, "chat", page{
		Title:   "Travel Assistant",
		Session: middleware.SessionFromContext(r.Context()),
	})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.render(w, "notfound", page{
		Title:   "Not Found",
		Session: h.sessions.Current(r.Context(), r),
	})
}

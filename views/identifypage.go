package views

import (
	"net/http"

	"yatra/identify"
	"yatra/middleware"
	"yatra/utils"

	"github.com/julienschmidt/httprouter"
)

type identifyData struct {
	Result *identify.Result
	Err    string
}

func (h *Handlers) IdentifyPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.render(w, "identify", page{
		Title:   "Identify Place",
		Session: middleware.SessionFromContext(r.Context()),
		Data:    identifyData{},
	})
}

// IdentifyUpload takes the photo, shrinks it to the classifier input
// size and renders the prediction. No auth required, mirroring the
// prediction endpoint itself.
func (h *Handlers) IdentifyUpload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.SessionFromContext(r.Context())
	p := page{Title: "Identify Place", Session: sess}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		p.Data = identifyData{Err: "Please upload an image first"}
		h.render(w, "identify", p)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		p.Data = identifyData{Err: "Please upload an image first"}
		h.render(w, "identify", p)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	res, err := identify.Process(r.Context(), h.api, file, header.Filename)
	if err != nil {
		p.Data = identifyData{Err: notice(err)}
		h.render(w, "identify", p)
		return
	}
	p.Data = identifyData{Result: res}
	h.render(w, "identify", p)
}

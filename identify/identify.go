package identify

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"log"

	"yatra/backend"
	"yatra/normalize"
	"yatra/utils"

	"github.com/disintegration/imaging"
)

// Result is what the identify page renders. Confidence arrives from the
// classifier already as a 0-100 percentage. AttractionID is only set
// when the predicted label resolved to a real attraction; a prediction
// with no match renders without a detail link.
type Result struct {
	Label        string  `json:"label"`
	DisplayName  string  `json:"display_name"`
	Confidence   float64 `json:"confidence"`
	AttractionID string  `json:"attraction_id,omitempty"`
}

// classifier input size
const inputPx = 224

// Process downscales an uploaded photo to the classifier's input size,
// forwards it, and resolves the predicted label against the live
// attraction list.
//
// The label is NOT turned into an id by slugifying it: labels are
// training-set class names, not identifiers, and a fabricated id would
// only deep-link by accidental naming collision. Resolution goes
// through the normalized attraction names instead, and an unresolved
// label simply yields no link.
func Process(ctx context.Context, api *backend.Client, file io.Reader, filename string) (*Result, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	img = imaging.Fit(img, inputPx, inputPx, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	pred, err := api.Predict(ctx, filename, &buf)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Label:       pred.Place,
		DisplayName: utils.TitleizeLabel(pred.Place),
		Confidence:  pred.Confidence,
	}
	res.AttractionID = resolveLabel(ctx, api, pred.Place)
	return res, nil
}

// resolveLabel finds the canonical id of the attraction whose name
// matches the label. Failure to resolve is not an error for the page.
func resolveLabel(ctx context.Context, api *backend.Client, label string) string {
	raw, err := api.ListAttractions(ctx)
	if err != nil {
		log.Printf("identify: attraction lookup: %v", err)
		return ""
	}
	for _, a := range normalize.Attractions(raw) {
		if a.CanonicalID == "" {
			continue
		}
		if utils.NamesMatch(a.Name, label) {
			return a.CanonicalID
		}
	}
	return ""
}

package itinerary

import (
	"bytes"
	"fmt"

	"yatra/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// BuildPDF renders the current mirror as a downloadable travel plan.
// Each entry gets a QR code deep-linking to its attraction page on the
// gateway; entries whose attraction id could not be normalized are
// listed without one.
func BuildPDF(entries []models.ItineraryEntry, publicURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "My Karnataka Itinerary")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	for i, e := range entries {
		y := pdf.GetY()
		if y > 250 {
			pdf.AddPage()
			y = pdf.GetY()
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%d. %s", i+1, e.Name))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, "Category: "+e.Category)
		pdf.Ln(6)
		pdf.Cell(0, 6, "Best Season: "+e.BestSeason)
		pdf.Ln(6)

		if e.AttractionID != "" {
			link := publicURL + "/attractions/" + e.AttractionID
			png, err := qrcode.Encode(link, qrcode.Medium, 256)
			if err != nil {
				return nil, fmt.Errorf("qr for %s: %w", e.Name, err)
			}
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			name := fmt.Sprintf("qr-%d", i)
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
			pdf.ImageOptions(name, 165, y, 25, 25, false, opts, 0, "")
		}
		pdf.Ln(10)
	}

	if len(entries) == 0 {
		pdf.Cell(0, 8, "No attractions saved yet.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

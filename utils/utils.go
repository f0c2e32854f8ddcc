package utils

import (
	"mime/multipart"
	"net/http"
	"strings"
)

// --- Image Validation ---

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
}

func ValidateImageFileType(w http.ResponseWriter, header *multipart.FileHeader) bool {
	mimeType := header.Header.Get("Content-Type")
	if !SupportedImageTypes[mimeType] {
		http.Error(w, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF, BMP, TIFF.", http.StatusBadRequest)
		return false
	}
	return true
}

// SplitTags takes a comma-separated string and returns a cleaned []string
func SplitTags(input string) []string {
	if input == "" {
		return []string{}
	}
	parts := strings.Split(input, ",")
	var tags []string
	seen := make(map[string]bool)

	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		tag = strings.ToLower(tag) // normalize
		if !seen[tag] {
			tags = append(tags, tag)
			seen[tag] = true
		}
	}
	return tags
}

// TitleizeLabel turns a classifier label like "mysore_palace" into the
// display form "Mysore Palace".
func TitleizeLabel(label string) string {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NamesMatch compares an attraction name with a classifier label,
// ignoring case and separator differences.
func NamesMatch(name, label string) bool {
	canon := func(s string) string {
		s = strings.ToLower(s)
		return strings.Map(func(r rune) rune {
			if r == '_' || r == '-' || r == ' ' {
				return -1
			}
			return r
		}, s)
	}
	return canon(name) != "" && canon(name) == canon(label)
}

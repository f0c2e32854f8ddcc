package utils

import "testing"

func TestTitleizeLabel(t *testing.T) {
	cases := map[string]string{
		"mysore_palace":          "Mysore Palace",
		"jog_falls":              "Jog Falls",
		"hampi":                  "Hampi",
		"bijapur-gol-gumbaz":     "Bijapur Gol Gumbaz",
		"":                       "",
		"bandipur_national_park": "Bandipur National Park",
	}
	for in, want := range cases {
		if got := TitleizeLabel(in); got != want {
			t.Errorf("TitleizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNamesMatch(t *testing.T) {
	if !NamesMatch("Mysore Palace", "mysore_palace") {
		t.Error("expected match")
	}
	if !NamesMatch("Jog Falls", "jog-falls") {
		t.Error("expected match")
	}
	if NamesMatch("Hampi", "badami") {
		t.Error("unexpected match")
	}
	if NamesMatch("", "") {
		t.Error("empty names must not match")
	}
}

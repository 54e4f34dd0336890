package utils

import (
	"testing"
	"time"
)

func TestNormalizeNameLower(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Iron   Temple ", "iron temple"},
		{"GYM", "gym"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeNameLower(tc.in); got != tc.want {
			t.Errorf("NormalizeNameLower(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Iron Temple", "iron-temple"},
		{"  Flex & Fit!  ", "flex-fit"},
		{"Crossfit_247", "crossfit-247"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("2026-04-01T18:30:00Z")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	want := time.Date(2026, 4, 1, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ParseTime("2026-04-01"); err != nil {
		t.Errorf("date-only format rejected: %v", err)
	}
	if _, err := ParseTime("tomorrow"); err == nil {
		t.Error("nonsense accepted")
	}
}

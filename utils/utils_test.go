package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("2026-04-01"); !ok {
		t.Fatal("expected a well-formed date to parse")
	}
	for _, bad := range []string{"", "04/01/2026", "2026-13-01", "yesterday"} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("expected %q to fail", bad)
		}
	}
}

func TestGenerateUpperAlnum(t *testing.T) {
	s := GenerateUpperAlnum(8)
	if len(s) != 8 {
		t.Fatalf("expected 8 characters, got %q", s)
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			t.Fatalf("%q contains %q outside [A-Z0-9]", s, r)
		}
	}
}

func TestParseLimit(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/bookings?limit=5", nil)
	if got := ParseLimit(req, 0); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}

	req = httptest.NewRequest("GET", "/api/bookings", nil)
	if got := ParseLimit(req, 10); got != 10 {
		t.Fatalf("expected fallback 10, got %d", got)
	}

	req = httptest.NewRequest("GET", "/api/bookings?limit=-3", nil)
	if got := ParseLimit(req, 0); got != 0 {
		t.Fatalf("expected fallback for negative limit, got %d", got)
	}
}

package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/openshelf/catalog/models"
)

func TestAbsoluteLinks(t *testing.T) {
	links := models.Links{
		"self":         "/books/abc",
		"reservations": "/books/abc/reservations",
	}

	resolved := AbsoluteLinks(links, "http://api.example.com")

	if resolved["self"] != "http://api.example.com/books/abc" {
		t.Errorf("unexpected self link: %s", resolved["self"])
	}
	if resolved["reservations"] != "http://api.example.com/books/abc/reservations" {
		t.Errorf("unexpected reservations link: %s", resolved["reservations"])
	}

	// input map must stay untouched
	if links["self"] != "/books/abc" {
		t.Errorf("input map was modified: %s", links["self"])
	}
}

func TestAbsoluteLinks_EmptyMap(t *testing.T) {
	if got := AbsoluteLinks(nil, "http://host"); got != nil {
		t.Errorf("expected nil passthrough, got %v", got)
	}

	empty := models.Links{}
	if got := AbsoluteLinks(empty, "http://host"); len(got) != 0 {
		t.Errorf("expected empty passthrough, got %v", got)
	}
}

func TestBaseURLFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "http://api.example.com/books", nil)

	if got := BaseURLFromRequest(req); got != "http://api.example.com" {
		t.Errorf("unexpected base URL: %s", got)
	}
}

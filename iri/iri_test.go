package iri

import (
	"net/url"
	"testing"
)

func TestParse_StripsPageParameter(t *testing.T) {
	p, err := Parse("/books?order=desc&page=3", "page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Path != "/books" {
		t.Errorf("unexpected path: got %q, want %q", p.Path, "/books")
	}
	if p.Query.Has("page") {
		t.Errorf("page parameter should be stripped, got query %v", p.Query)
	}
	if got := p.Query.Get("order"); got != "desc" {
		t.Errorf("existing parameters should be preserved, got order=%q", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("http://[::1:bad", "page"); err == nil {
		t.Fatal("expected error for malformed IRI")
	}
}

func TestParsedIRI_String(t *testing.T) {
	p, err := Parse("/books?author=orwell&page=2", "page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.String(); got != "/books?author=orwell" {
		t.Errorf("unexpected IRI: got %q", got)
	}
}

func TestCreate_QueryStrategy(t *testing.T) {
	p, err := Parse("/books?order=desc", "page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := 7.0
	got := Create(p, nil, "page", &page, StrategyQuery)
	if got != "/books?order=desc&page=7" {
		t.Errorf("unexpected link: got %q", got)
	}
}

func TestCreate_PathStrategy(t *testing.T) {
	p, err := Parse("/books/", "page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := 2.0
	got := Create(p, nil, "page", &page, StrategyPath)
	if got != "/books/page/2" {
		t.Errorf("unexpected link: got %q", got)
	}
}

func TestCreate_DoesNotMutateParsedIRI(t *testing.T) {
	p, err := Parse("/books?order=desc", "page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	extra := url.Values{}
	extra.Set("id[gt]", "20")
	page := 4.0
	Create(p, extra, "page", &page, StrategyQuery)

	if p.Query.Has("page") || p.Query.Has("id[gt]") {
		t.Errorf("parsed IRI was mutated: %v", p.Query)
	}
}

func TestCreate_NoPage(t *testing.T) {
	p, err := Parse("/books?order=desc&page=5", "page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Create(p, nil, "page", nil, StrategyQuery); got != "/books?order=desc" {
		t.Errorf("unexpected link: got %q", got)
	}
}

func TestFormatPage(t *testing.T) {
	if got := FormatPage(3); got != "3" {
		t.Errorf("whole pages should render without a fraction, got %q", got)
	}
	if got := FormatPage(2.5); got != "2.5" {
		t.Errorf("fractional pages should keep their fraction, got %q", got)
	}
}

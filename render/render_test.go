package render

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/restkit/jsonapi/collection"
	"github.com/restkit/jsonapi/document"
)

func TestCollection(t *testing.T) {
	rec := httptest.NewRecorder()

	Collection(rec, &document.Document{
		Links: document.Links{Self: "/articles"},
		Data:  []any{},
	})

	if rec.Code != 200 {
		t.Errorf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != ContentType {
		t.Errorf("unexpected content type: %q", got)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"links":{"self":"/articles"},"data":[]}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestError_MalformedItem(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, &collection.MalformedItemError{Index: 2, Reason: "fragment has no data member"})

	if rec.Code != 500 {
		t.Errorf("unexpected status: %d", rec.Code)
	}

	var envelope struct {
		Errors []ErrorObject `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if len(envelope.Errors) != 1 {
		t.Fatalf("expected one error object, got %v", envelope.Errors)
	}
	if envelope.Errors[0].Code != "-422" {
		t.Errorf("unexpected code: %q", envelope.Errors[0].Code)
	}
	if !strings.Contains(envelope.Errors[0].Detail, "index 2") {
		t.Errorf("detail should name the failing item: %q", envelope.Errors[0].Detail)
	}
}

func TestError_Generic(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, errors.New("boom"))

	var envelope struct {
		Errors []ErrorObject `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Errors[0].Code != "-500" {
		t.Errorf("unexpected code: %q", envelope.Errors[0].Code)
	}
}

func TestBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()

	BadRequest(rec, "page must be a number")

	if rec.Code != 400 {
		t.Errorf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "page must be a number") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

package render

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/restkit/jsonapi/collection"
	"github.com/restkit/jsonapi/document"
	"github.com/restkit/jsonapi/ecode"
)

// ContentType is the JSON:API media type.
const ContentType = "application/vnd.api+json; charset=utf-8"

// ErrorObject is one member of a JSON:API errors array.
type ErrorObject struct {
	Status string `json:"status,omitempty"`
	Code   string `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// errorDocument is the top-level error envelope.
type errorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// Collection writes a collection document with a 200 status.
func Collection(w http.ResponseWriter, doc *document.Document) {
	write(w, http.StatusOK, doc)
}

// Error writes a JSON:API error envelope for err. A malformed item
// fragment carries the unprocessable business code; everything else is a
// plain server error.
func Error(w http.ResponseWriter, err error) {
	code := ecode.ServerErr
	var malformed *collection.MalformedItemError
	if errors.As(err, &malformed) {
		code = ecode.UnprocessableErr
	}

	status := http.StatusInternalServerError
	write(w, status, &errorDocument{Errors: []ErrorObject{{
		Status: strconv.Itoa(status),
		Code:   strconv.Itoa(code),
		Title:  ecode.Text(code),
		Detail: err.Error(),
	}}})
}

// BadRequest writes a JSON:API error envelope for an invalid request.
func BadRequest(w http.ResponseWriter, detail string) {
	status := http.StatusBadRequest
	write(w, status, &errorDocument{Errors: []ErrorObject{{
		Status: strconv.Itoa(status),
		Code:   strconv.Itoa(ecode.RequestErr),
		Title:  ecode.Text(ecode.RequestErr),
		Detail: detail,
	}}})
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

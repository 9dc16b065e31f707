// Package iri decomposes and reassembles collection IRIs for link building.
//
// A parsed IRI keeps the request path and query with the page parameter
// stripped; every generated link merges its own parameters over a clone of
// the parsed query, so a single parsed IRI can serve all navigation links
// of a response without being mutated.
package iri

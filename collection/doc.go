// Package collection assembles paginated collections into JSON:API
// documents.
//
// The normalizer composes two independent stages. The item aggregator runs
// every element through an injected per-item normalizer and merges the
// resulting fragments into the document's data and included arrays, with
// included entries de-duplicated by deep value equality. The link builder
// derives the navigation links and metadata from the pagination state of
// the request, dispatching between offset and cursor pagination on the
// resource metadata.
//
// Collaborators are consumed through narrow interfaces:
//
//	inspector — pagination state of the request (paging.Config)
//	resolver  — cursor fields and URL strategy of the resource
//	items     — per-item fragment producer
//
// A minimal wiring:
//
//	n, err := collection.New(inspector, resolver, itemNormalizer)
//	if err != nil { ... }
//	doc, err := n.NormalizeCollection(&collection.Context{
//	    RequestIRI: "/articles?page=2",
//	    Resource:   "articles",
//	}, items, "jsonapi")
//
// Normalization is a pure formatting step: it never fetches data, and the
// only hard failure is a fragment violating the item normalizer contract.
package collection

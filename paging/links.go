package paging

import (
	"fmt"
	"net/url"

	"github.com/restkit/jsonapi/document"
	"github.com/restkit/jsonapi/iri"
)

// BuildOffsetLinks builds the navigation links of a page-number-paginated
// collection. Page numbers are injected under pageParam, preserving every
// other query parameter of the request IRI; the strategy controls how the
// page parameter is serialized.
func BuildOffsetLinks(parsed *iri.ParsedIRI, pageParam string, cfg Config, strategy iri.Strategy) document.Links {
	var links document.Links

	if cfg.Paginated {
		links.Self = iri.Create(parsed, nil, pageParam, &cfg.CurrentPage, strategy)
	} else {
		links.Self = iri.Create(parsed, nil, pageParam, nil, strategy)
	}

	if cfg.LastPage != nil {
		first := 1.0
		links.First = iri.Create(parsed, nil, pageParam, &first, strategy)
		links.Last = iri.Create(parsed, nil, pageParam, cfg.LastPage, strategy)
	}

	if cfg.HasPrevPage() {
		prev := cfg.CurrentPage - 1
		links.Prev = iri.Create(parsed, nil, pageParam, &prev, strategy)
	}
	if cfg.HasNextPage() {
		next := cfg.CurrentPage + 1
		links.Next = iri.Create(parsed, nil, pageParam, &next, strategy)
	}

	return links
}

// BuildCursorLinks builds the navigation links of a cursor-paginated
// collection from the boundary items of the current page. Self is the bare
// collection IRI; prev and next carry comparison filters on the cursor
// fields, one filter per field, all of which the consuming query layer must
// satisfy together.
//
// Prev only requires a first item and a current page other than the first:
// cursor sources usually cannot cheaply prove that a previous page exists,
// so no stronger check is applied.
func BuildCursorLinks(parsed *iri.ParsedIRI, cfg Config, fields []Field, first, last any, reader ValueReader) (document.Links, error) {
	links := document.Links{Self: parsed.String()}

	if first != nil && cfg.HasPrevPage() {
		filters, err := CursorFilters(fields, Backward, first, reader)
		if err != nil {
			return document.Links{}, err
		}
		links.Prev = iri.Create(parsed, filterValues(filters), "", nil, iri.StrategyQuery)
	}

	if last != nil && cfg.HasNextPage() {
		filters, err := CursorFilters(fields, Forward, last, reader)
		if err != nil {
			return document.Links{}, err
		}
		links.Next = iri.Create(parsed, filterValues(filters), "", nil, iri.StrategyQuery)
	}

	return links, nil
}

// filterValues flattens cursor filters into query parameters of the form
// name[operator]=value.
func filterValues(filters map[string]map[string]string) url.Values {
	values := url.Values{}
	for name, ops := range filters {
		for op, val := range ops {
			values.Set(fmt.Sprintf("%s[%s]", name, op), val)
		}
	}
	return values
}

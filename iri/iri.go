package iri

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Strategy selects how the page parameter is serialized into a link.
type Strategy string

const (
	// StrategyQuery serializes the page parameter as a query parameter.
	StrategyQuery Strategy = "query"
	// StrategyPath embeds the page parameter as a trailing path segment.
	StrategyPath Strategy = "path"
)

// ParsedIRI is the decomposition of a collection IRI. Query never contains
// the page parameter; Create re-applies it per link. Treat as read-only:
// link building always works on a cloned query.
type ParsedIRI struct {
	Path  string
	Query url.Values
}

// Parse decomposes a raw IRI and strips the page parameter from its query.
func Parse(raw, pageParam string) (*ParsedIRI, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse IRI %q: %w", raw, err)
	}
	q := u.Query()
	q.Del(pageParam)
	return &ParsedIRI{Path: u.Path, Query: q}, nil
}

// String reassembles the IRI without any page parameter.
func (p *ParsedIRI) String() string {
	return assemble(p.Path, p.Query)
}

// Create builds a link from the parsed IRI. Extra query parameters are
// merged over the existing ones and, when page is non-nil, the page
// parameter is applied according to the strategy. The parsed IRI itself is
// never mutated.
func Create(p *ParsedIRI, extra url.Values, pageParam string, page *float64, strategy Strategy) string {
	q := cloneValues(p.Query)
	for k, vs := range extra {
		q[k] = append([]string(nil), vs...)
	}

	path := p.Path
	if page != nil {
		switch strategy {
		case StrategyPath:
			path = strings.TrimSuffix(path, "/") + "/" + pageParam + "/" + FormatPage(*page)
		default:
			q.Set(pageParam, FormatPage(*page))
		}
	}

	return assemble(path, q)
}

// FormatPage renders a page number, without a trailing fraction for whole
// values.
func FormatPage(page float64) string {
	return strconv.FormatFloat(page, 'f', -1, 64)
}

func assemble(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

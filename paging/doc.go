// Package paging builds the navigation links and pagination metadata of
// collection responses.
//
// Two structurally different strategies share one link-building contract:
//
//   - Offset pagination navigates by page number. Links are the request IRI
//     with the page parameter overridden, all other query parameters
//     preserved.
//   - Cursor (keyset) pagination navigates by comparison filters on the
//     sort-key values of the boundary items of the current page, avoiding
//     large offsets.
//
// Link existence is decided from incomplete information. With a known last
// page, prev/next follow from the current page position; with an unknown
// total, a full page is the only evidence that more data exists:
//
//	cfg := paging.Config{CurrentPage: 2, ItemsPerPage: 10, PageItemCount: 10}
//	cfg.HasNextPage() // true: page is full
//
// The package is pure: every builder derives fresh links from a parsed IRI
// and a per-request Config without touching shared state.
package paging

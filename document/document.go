package document

// Links holds the navigation links of a collection document.
// Self is always present; the remaining links appear only when the
// pagination state warrants them.
type Links struct {
	Self  string `json:"self"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// Meta holds the pagination metadata of a collection document.
// Nil fields are omitted from the serialized output.
type Meta struct {
	TotalItems   *int64 `json:"totalItems,omitempty"`
	ItemsPerPage *int64 `json:"itemsPerPage,omitempty"`
	CurrentPage  *int64 `json:"currentPage,omitempty"`
}

// Document is the top-level JSON:API collection response.
type Document struct {
	Links    Links `json:"links"`
	Meta     *Meta `json:"meta,omitempty"`
	Data     []any `json:"data"`
	Included []any `json:"included,omitempty"`
}

package paging

import "math"

// Order represents the sort direction of a cursor field.
type Order string

const (
	Ascending  Order = "asc"  // Ascending order
	Descending Order = "desc" // Descending order
)

// Field is one ordering key of a cursor-paginated collection. A list of
// fields defines a composite ordering; the first field is the primary
// sort key.
type Field struct {
	Name  string `json:"field" validate:"required"`
	Order Order  `json:"order" validate:"required,oneof=asc desc"`
}

// Direction is the movement of the cursor relative to the current page.
type Direction int

const (
	Backward Direction = -1 // Toward the previous page
	Forward  Direction = 1  // Toward the next page
)

// ValueReader extracts a named field value from a boundary item.
type ValueReader interface {
	Value(object any, field string) (any, error)
}

// Config is the pagination state of one collection response, produced by a
// pagination inspector and immutable for the duration of link building.
// A nil LastPage or TotalItems means the value is unknown; unknown is a
// distinct state and never collapses to zero.
type Config struct {
	Paginator     bool
	Paginated     bool
	CurrentPage   float64
	ItemsPerPage  float64
	PageItemCount float64
	LastPage      *float64
	TotalItems    *float64
}

// HasPrevPage reports whether a previous page exists.
func (c Config) HasPrevPage() bool {
	return c.CurrentPage != 1
}

// HasNextPage reports whether there is evidence of more data: either the
// last page is known and the current page is not it, or the last page is
// unknown and the current page is full.
func (c Config) HasNextPage() bool {
	if c.LastPage != nil {
		return c.CurrentPage != *c.LastPage
	}
	return c.PageItemCount >= c.ItemsPerPage
}

// NewConfig derives a Config from a known total, computing the last page
// and the item count of the current page.
func NewConfig(totalItems, currentPage, itemsPerPage float64) Config {
	lastPage := 1.0
	if itemsPerPage > 0 {
		lastPage = math.Ceil(totalItems / itemsPerPage)
		if lastPage < 1 {
			lastPage = 1
		}
	}

	count := itemsPerPage
	if remaining := totalItems - (currentPage-1)*itemsPerPage; remaining < count {
		count = remaining
	}
	if count < 0 {
		count = 0
	}

	return Config{
		Paginator:     true,
		Paginated:     lastPage > 1,
		CurrentPage:   currentPage,
		ItemsPerPage:  itemsPerPage,
		PageItemCount: count,
		LastPage:      &lastPage,
		TotalItems:    &totalItems,
	}
}

package paging

import "github.com/restkit/jsonapi/document"

// BuildMeta builds the pagination metadata of a collection document.
// TotalItems is present whenever the total is known; ItemsPerPage and
// CurrentPage whenever the source is a paginator, even with pagination
// effectively disabled. Returns nil when neither applies.
func BuildMeta(cfg Config) *document.Meta {
	if cfg.TotalItems == nil && !cfg.Paginator {
		return nil
	}

	meta := &document.Meta{}
	if cfg.TotalItems != nil {
		total := int64(*cfg.TotalItems)
		meta.TotalItems = &total
	}
	if cfg.Paginator {
		perPage := int64(cfg.ItemsPerPage)
		current := int64(cfg.CurrentPage)
		meta.ItemsPerPage = &perPage
		meta.CurrentPage = &current
	}
	return meta
}

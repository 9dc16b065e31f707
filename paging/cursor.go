package paging

import (
	"fmt"

	"github.com/restkit/jsonapi/convert"
)

// Comparison operators understood by the consuming query layer.
const (
	OpGreaterThan = "gt"
	OpLessThan    = "lt"
)

// CursorFilters computes the comparison filters that move the cursor one
// page in the given direction relative to a boundary item. The result maps
// each field name to a single-entry operator-to-value mapping; values are
// read off the item and stringified.
func CursorFilters(fields []Field, dir Direction, item any, reader ValueReader) (map[string]map[string]string, error) {
	filters := make(map[string]map[string]string, len(fields))
	for _, f := range fields {
		value, err := reader.Value(item, f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read cursor field %q: %w", f.Name, err)
		}
		filters[f.Name] = map[string]string{
			operatorFor(f.Order, dir): convert.ToString(value),
		}
	}
	return filters, nil
}

// operatorFor returns the operator that moves the cursor in the requested
// direction relative to the field's sort order. On a descending field,
// moving forward means "less than"; on an ascending field it means
// "greater than". Backward movement inverts either.
func operatorFor(order Order, dir Direction) string {
	if order == Descending {
		if dir == Forward {
			return OpLessThan
		}
		return OpGreaterThan
	}
	if dir == Forward {
		return OpGreaterThan
	}
	return OpLessThan
}

package collection

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// aggregate iterates the collection, normalizes each element and merges the
// fragments into a combined data array plus a de-duplicated included array.
// Iteration order is preserved for data; included keeps first-seen order.
func (n *Normalizer) aggregate(items []any, format string, ctx *Context) (data, included []any, err error) {
	data = make([]any, 0, len(items))
	seen := make(map[string]struct{})

	for i, item := range items {
		fragment, err := n.items.NormalizeItem(item, format, ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to normalize item %d: %w", i, err)
		}

		m, ok := fragment.(map[string]any)
		if !ok {
			return nil, nil, &MalformedItemError{Index: i, Reason: fmt.Sprintf("fragment is %T, not a structured mapping", fragment)}
		}
		d, ok := m["data"]
		if !ok {
			return nil, nil, &MalformedItemError{Index: i, Reason: "fragment has no data member"}
		}
		data = append(data, d)

		if raw, ok := m["included"]; ok {
			entries, ok := raw.([]any)
			if !ok {
				return nil, nil, &MalformedItemError{Index: i, Reason: fmt.Sprintf("included member is %T, not a sequence", raw)}
			}
			included = mergeIncluded(included, seen, entries)
		}
	}

	return data, included, nil
}

// mergeIncluded appends entries with set semantics. Equality is deep value
// equality: entries are keyed on their canonical JSON form (maps marshal
// with sorted keys), with a linear reflect.DeepEqual scan as fallback for
// values that do not marshal.
func mergeIncluded(dst []any, seen map[string]struct{}, entries []any) []any {
	for _, entry := range entries {
		key, err := json.Marshal(entry)
		if err != nil {
			if !containsDeepEqual(dst, entry) {
				dst = append(dst, entry)
			}
			continue
		}
		if _, dup := seen[string(key)]; dup {
			continue
		}
		seen[string(key)] = struct{}{}
		dst = append(dst, entry)
	}
	return dst
}

func containsDeepEqual(entries []any, candidate any) bool {
	for _, e := range entries {
		if reflect.DeepEqual(e, candidate) {
			return true
		}
	}
	return false
}

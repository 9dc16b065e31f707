package collection

import "fmt"

// MalformedItemError reports a per-item fragment that violates the item
// normalizer contract: not a structured mapping, or missing the mandatory
// data member. It aborts the whole collection normalization; no partial
// document is produced.
type MalformedItemError struct {
	Index  int
	Reason string
}

func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("malformed collection item at index %d: %s", e.Index, e.Reason)
}

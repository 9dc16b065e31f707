// Package property reads field values off arbitrary objects by name.
// It backs cursor link building, which needs the sort-key values of the
// boundary items of a page without knowing their concrete type.
package property

// Package convert provides scalar conversion helpers shared by the link
// builders, chiefly the canonical stringification of cursor field values.
package convert

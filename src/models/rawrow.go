// backend/src/models/rawrow.go
package models

// RawRow is a single parsed CSV row, keyed by the (trimmed) header cells.
// Upstream feeds are inconsistent about header spellings, so consumers read
// values through Get with a list of candidate keys instead of indexing the
// map directly.
type RawRow map[string]string

// Get returns the value of the first candidate key that is present with a
// non-empty value, or "" when none match.
func (r RawRow) Get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

package domain

// Currency is an immutable ISO-4217 reference entity. The full set is loaded
// once at process start into the static registry and never mutated at runtime.
type Currency struct {
	Code   string `json:"code"`   // 3-letter ISO 4217 code, e.g. "USD"
	Symbol string `json:"symbol"` // display glyph, e.g. "$"
	Name   string `json:"name"`   // e.g. "US Dollar"
}

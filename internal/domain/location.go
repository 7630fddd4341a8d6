package domain

import "strings"

// Represents a place a participant travels from or to.
// A Location is an immutable value: created by the caller, shared by copy,
// never mutated after construction.
type Location struct {
	Code string
	Name string
}

// Valid reports whether the location carries a usable identifier.
func (l Location) Valid() bool {
	return strings.TrimSpace(l.Code) != ""
}

// Same reports whether two locations identify the same place.
func (l Location) Same(other Location) bool {
	return l.Code == other.Code
}

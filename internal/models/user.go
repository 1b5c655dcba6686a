// Package models contains data structures for the application's domain models.
package models

// User represents a person identified by their name pair. The ID is an
// opaque anchor for check-in ownership; lookup is always by name.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// InsertUser carries the caller-supplied fields for user creation.
type InsertUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session identifies the signed-in user. It is passed explicitly into every
// domain call rather than read from ambient state.
type Session struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

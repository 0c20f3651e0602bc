// Package model holds the domain types decoded from GreenLoop GraphQL
// responses. Every type is an immutable snapshot: the client builds a fresh
// value per response and nothing here is mutated in place.
package model

// User is an account holder, identified by the server-assigned id.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// EditableProfileInfo is the update-profile mutation input: the subset of
// User the account holder may change, keyed by id.
type EditableProfileInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

package models

import "time"

// Account represents a registered RECOOK BOOK user.
//
// Accounts are created by signup and never mutated afterwards. The password
// is kept as typed by the user: this application has no server side and the
// local store is not a security boundary.
type Account struct {
	// ID is the unique identifier assigned on creation.
	ID int64 `json:"id"`

	// FirstName is the given name shown in the navigation greeting.
	FirstName string `json:"firstName"`

	// LastName is the family name of the user.
	LastName string `json:"lastName"`

	// Email is the login identifier. It is unique across the directory and
	// compared case-sensitively, exactly as stored.
	Email string `json:"email"`

	// Password is stored in clear text.
	Password string `json:"password"`

	// Newsletter reports whether the user opted in to the newsletter.
	Newsletter bool `json:"newsletter"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// FullName returns "FirstName LastName".
func (a Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

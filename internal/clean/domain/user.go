// Package domain holds the innermost ring of the clean variant: the user
// entity and nothing else.
package domain

import "userarch/pkg/validate"

// User is the user entity, valid by construction.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser validates id, name and email in contract order and returns the
// entity or a validation error.
func NewUser(id, name, email string) (*User, error) {
	if err := validate.User(validate.NonEmptyID, id, name, email); err != nil {
		return nil, err
	}
	return &User{ID: id, Name: name, Email: email}, nil
}

// Package models holds the domain entities of the layered variant.
package models

import "userarch/pkg/validate"

// User is the user entity. Construction validates every invariant, so a
// User value never exists in a partially valid state.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser validates id, name and email (in that order) and returns the
// entity, or a validation error with no side effects.
func NewUser(id, name, email string) (*User, error) {
	if err := validate.User(validate.NonEmptyID, id, name, email); err != nil {
		return nil, err
	}
	return &User{ID: id, Name: name, Email: email}, nil
}

// Package domain is the inside of the hexagon: the user entity and its
// invariants, free of transport and persistence concerns.
package domain

import (
	"github.com/google/uuid"

	"userarch/pkg/validate"
)

// User is the user entity. Values are constructed valid or not at all.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser builds a User. An empty id gets a generated UUID; a supplied id
// must already be UUID-shaped. This variant applies the strict id policy
// uniformly.
func NewUser(id, name, email string) (*User, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if err := validate.User(validate.UUIDID, id, name, email); err != nil {
		return nil, err
	}
	return &User{ID: id, Name: name, Email: email}, nil
}

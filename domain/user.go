// Package domain contains core concepts of the chat directory.
// This file defines User entities.
// No runtime, network, or UI logic should be added here.
package domain

// User is identified by its mobile number.
// Names carry no uniqueness constraint.
type User struct {
	Name   string
	Mobile string `validate:"required"`
}

func NewUser(name, mobile string) User {
	return User{Name: name, Mobile: mobile}
}

package models

import "time"

// User is a stored user record. PasswordHash is the only form in which the
// credential is ever kept.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a copy that shares no memory with u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// UserUpdate carries the new state for an update. An empty PasswordHash keeps
// the stored one.
type UserUpdate struct {
	Name         string
	Email        string
	PasswordHash string
}

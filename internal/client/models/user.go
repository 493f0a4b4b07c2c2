// Package models holds the client-side view of a user record.
package models

import (
	"time"

	pb "github.com/dmitrijs2005/usersrpc/internal/proto"
)

// User is a record as returned by the server. PasswordHash is empty unless the
// server is configured to expose it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func FromPB(u *pb.User) *User {
	if u == nil {
		return nil
	}
	out := &User{
		ID:           u.GetId(),
		Name:         u.GetName(),
		Email:        u.GetEmail(),
		PasswordHash: u.GetPassword(),
	}
	if ts := u.GetCreatedAt(); ts != nil {
		out.CreatedAt = ts.AsTime()
	}
	if ts := u.GetUpdatedAt(); ts != nil {
		out.UpdatedAt = ts.AsTime()
	}
	return out
}

func (u *User) String() string {
	return "id=" + u.ID + " name=" + u.Name + " email=" + u.Email
}

// Package session maps an opaque cookie-held identifier to the currently
// authenticated principal. The backing store is an interface so the
// process-local map can be swapped for redis without touching handlers.
package session

import "context"

// Session holds at most one authenticated principal: setting one slot
// zeroes the other.
type Session struct {
	UserID   uint `json:"user_id"`
	DoctorID uint `json:"doctor_id"`
}

func (s Session) Authenticated() bool {
	return s.UserID != 0 || s.DoctorID != 0
}

type Store interface {
	// Get returns the session for sid, reporting false when none exists.
	Get(ctx context.Context, sid string) (Session, bool, error)
	Set(ctx context.Context, sid string, sess Session) error
	Delete(ctx context.Context, sid string) error
}

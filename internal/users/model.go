package users

import "time"

// User is a registry record. ID and CreatedAt are assigned by the
// registry and never supplied by callers; CreatedAt is immutable for
// the lifetime of the record.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

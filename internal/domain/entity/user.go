package entity

import "time"

// UserStatus flags a customer account. An empty status means active; users are
// soft-deleted by status rather than removed, unless a full erasure cascade is
// requested.
type UserStatus string

// User statuses.
const (
	UserActive  UserStatus = ""
	UserDeleted UserStatus = "Deleted"
)

// User is a customer identified by phone number. It carries no surrogate id:
// the mobile number is the natural key across orders and sessions.
type User struct {
	MobileNumber    string     `json:"mobile_number"`
	Name            string     `json:"name,omitempty"`
	AltMobileNumber string     `json:"alt_mobile_number,omitempty"`
	Address         string     `json:"address,omitempty"`
	Status          UserStatus `json:"status,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Active reports whether the user should appear in directories and rollups.
func (u *User) Active() bool {
	return u.Status != UserDeleted
}

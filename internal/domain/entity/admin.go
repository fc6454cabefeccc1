// Package entity contains the core business objects of the project.
package entity

import "time"

// Admin is a back-office account. Exactly one is seeded at startup when the
// collection is empty; more can be added out of band.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

package domain

import "time"

// Contact is a single address-book entry. Every contact belongs to exactly
// one user and is invisible outside that owner's scope.
type Contact struct {
	ID       string
	OwnerID  string
	Name     string
	Email    string
	Phone    string
	Favorite bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

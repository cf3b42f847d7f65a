package domain

import "time"

// Subscription is the plan tier attached to a user account.
type Subscription string

const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

// Valid reports whether s is one of the known subscription tiers.
func (s Subscription) Valid() bool {
	switch s {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	}
	return false
}

func (s Subscription) String() string { return string(s) }

type User struct {
	ID           string
	Email        string // unique, doubles as the login identifier
	PasswordHash string // argon2 encoded, never empty for a stored record
	Subscription Subscription

	// SessionToken caches the most recently issued signed token. Empty means
	// the user is not currently logged in. A login overwrites it, so only one
	// session is live at a time.
	SessionToken string

	// Verified and VerificationToken move in lockstep: the token is empty
	// if and only if the account has been verified.
	Verified          bool
	VerificationToken string

	AvatarURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

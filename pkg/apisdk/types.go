// Package apisdk contains the wire types for the phonebook API plus a small
// HTTP client for talking to it. The server handlers and the client share
// these definitions so the two cannot drift apart.
package apisdk

// UserPayload is the public projection of a user account. Password hashes
// and tokens are never echoed back.
type UserPayload struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Subscription string `json:"subscription,omitempty"`
}

// RegisterResponse confirms the created account.
type RegisterResponse struct {
	User UserPayload `json:"user"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// MessageResponse is the generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResendVerificationRequest asks for the verification mail to be re-sent.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// UpdateSubscriptionRequest changes the account's plan tier.
type UpdateSubscriptionRequest struct {
	Subscription string `json:"subscription"`
}

// UserResponse is the fuller projection returned by profile mutations.
type UserResponse struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
	AvatarURL    string `json:"avatarURL,omitempty"`
	Verified     bool   `json:"verified"`
}

// AvatarResponse reports where the processed avatar was stored.
type AvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

// ContactRequest creates or replaces a contact.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite bool   `json:"favorite,omitempty"`
}

// UpdateFavoriteRequest flips the favorite flag. A pointer distinguishes
// "false" from "missing".
type UpdateFavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

// HealthResponse reports liveness and readiness probe results.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// ContactResponse is a single address-book entry.
type ContactResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite bool   `json:"favorite"`
}

package store

import (
	"context"
	"errors"

	"github.com/helioslabs/phonebook/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep the surface tidy and let service
// tests substitute a single concern at a time.
type Store interface {
	Users() Users
	Contacts() Contacts

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. All mutations in
	// this service are single-record, so transactions are only needed where a
	// read-modify-write must not interleave (e.g. verification).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store with explicit Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByVerificationToken looks up the holder of a still-pending
	// verification token. Verified users never match (their token is nulled).
	GetUserByVerificationToken(ctx context.Context, token string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken; the unique index is
	// what resolves two concurrent registrations for the same address.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateSessionToken sets the cached session token and bumps updated_at.
	// An empty token means logged out.
	UpdateSessionToken(ctx context.Context, userID, token string) error

	// MarkVerified flips verified on and nulls the verification token.
	MarkVerified(ctx context.Context, userID string) error

	// UpdateSubscription overwrites the subscription tier.
	UpdateSubscription(ctx context.Context, userID string, sub domain.Subscription) error

	// UpdateAvatarURL points the user at a newly processed avatar image.
	UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error
}

type Contacts interface {
	// ListByOwner returns all contacts belonging to a user, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Contact, error)

	// GetByID returns a contact only if it belongs to ownerID.
	GetByID(ctx context.Context, ownerID, id string) (domain.Contact, error)

	// Create inserts a new contact (id provided by the app via ULID).
	Create(ctx context.Context, c domain.Contact) error

	// Update overwrites name/email/phone/favorite for an owned contact.
	Update(ctx context.Context, c domain.Contact) error

	// UpdateFavorite flips just the favorite flag for an owned contact.
	UpdateFavorite(ctx context.Context, ownerID, id string, favorite bool) error

	// Delete removes an owned contact.
	Delete(ctx context.Context, ownerID, id string) error
}

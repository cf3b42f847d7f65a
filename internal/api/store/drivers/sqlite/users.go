package sqlite

import (
	"context"
	"database/sql"

	"github.com/helioslabs/phonebook/internal/api/domain"
	"github.com/helioslabs/phonebook/internal/api/store"
)

type usersRepo struct {
	q dbtx
}

const userColumns = `id, email, password_hash, subscription, session_token,
	verified, verification_token, avatar_url, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var sub string
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&sub,
		&u.SessionToken,
		&u.Verified,
		&u.VerificationToken,
		&u.AvatarURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Subscription = domain.Subscription(sub)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) GetUserByVerificationToken(
	ctx context.Context,
	token string,
) (domain.User, error) {
	// The token column is '' for verified users, so an empty lookup must
	// never match a record.
	if token == "" {
		return domain.User{}, store.ErrNotFound
	}
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE verification_token = ?`, token))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, subscription, session_token,
			verified, verification_token, avatar_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Subscription.String(),
		u.SessionToken,
		u.Verified,
		u.VerificationToken,
		u.AvatarURL,
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdateSessionToken(ctx context.Context, userID, token string) error {
	return r.exec(ctx,
		`UPDATE users SET session_token = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		token, userID)
}

func (r *usersRepo) MarkVerified(ctx context.Context, userID string) error {
	return r.exec(ctx, `
		UPDATE users SET verified = 1, verification_token = '',
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, userID)
}

func (r *usersRepo) UpdateSubscription(
	ctx context.Context,
	userID string,
	sub domain.Subscription,
) error {
	return r.exec(ctx,
		`UPDATE users SET subscription = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		sub.String(), userID)
}

func (r *usersRepo) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error {
	return r.exec(ctx,
		`UPDATE users SET avatar_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		avatarURL, userID)
}

// exec runs a single-row UPDATE and reports ErrNotFound when no row matched,
// so callers can distinguish "user vanished" races from success.
func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

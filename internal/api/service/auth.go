package service

import (
	"context"
	"crypto/md5" // #nosec G501 - gravatar addressing, not security
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/helioslabs/phonebook/internal/api/domain"
	mailer "github.com/helioslabs/phonebook/internal/api/mail"
	"github.com/helioslabs/phonebook/internal/api/store"
	"github.com/helioslabs/phonebook/pkg/cryptox"
	"github.com/helioslabs/phonebook/pkg/idx"
	"github.com/helioslabs/phonebook/pkg/jwtx"
)

// AuthService owns account lifecycle: registration, login sessions,
// email verification and plan changes.
type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Mailer     mailer.Mailer
	Logger     *slog.Logger
	Issuer     string
	BaseURL    string
	SessionTTL time.Duration
}

// Register creates an unverified account and dispatches the verification
// mail. Mail failure does not fail registration; the user can always ask for
// a resend.
func (s *AuthService) Register(
	ctx context.Context,
	email, password string,
	subscription domain.Subscription,
) (domain.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, err
	}
	if password == "" {
		return domain.User{}, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if subscription == "" {
		subscription = domain.SubscriptionStarter
	}
	if !subscription.Valid() {
		return domain.User{}, fmt.Errorf("%w: unknown subscription %q", ErrValidation, subscription)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	verifyToken, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to generate verification token: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:                idx.New().String(),
		Email:             email,
		PasswordHash:      hash,
		Subscription:      subscription,
		Verified:          false,
		VerificationToken: verifyToken,
		AvatarURL:         gravatarURL(email),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.sendVerification(ctx, user); err != nil {
		s.Logger.Warn("verification mail not delivered",
			"user_id", user.ID,
			"err", err,
		)
	}

	return user, nil
}

// Login checks credentials and mints a new session token. The token is also
// persisted on the user row; presenting an older token after a fresh login
// fails authentication.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparable amount of work so a missing account is not
			// distinguishable from a wrong password by response time.
			_, _ = cryptox.HashPassword(password)
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}
	if !user.Verified {
		return domain.User{}, "", ErrNotVerified
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(user.ID, user.Email, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.Store.Users().UpdateSessionToken(ctx, user.ID, token); err != nil {
		return domain.User{}, "", fmt.Errorf("failed to persist session token: %w", err)
	}
	user.SessionToken = token

	return user, token, nil
}

// Logout drops the stored session token, invalidating the presented JWT even
// though its signature stays valid until expiry.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.Store.Users().UpdateSessionToken(ctx, userID, ""); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// ResolveIdentity authenticates a bearer token. The signature and claims must
// check out AND the token must still be the one stored for the user, so a
// logout or newer login kills older tokens immediately.
func (s *AuthService) ResolveIdentity(ctx context.Context, rawToken string) (domain.User, error) {
	claims, err := s.Verifier.Verify(rawToken)
	if err != nil {
		return domain.User{}, ErrUnauthorized
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnauthorized
		}
		return domain.User{}, fmt.Errorf("failed to load user: %w", err)
	}

	if user.SessionToken == "" || user.SessionToken != rawToken {
		return domain.User{}, ErrUnauthorized
	}

	return user, nil
}

// UpdateSubscription changes the account's plan tier and returns the updated
// user.
func (s *AuthService) UpdateSubscription(
	ctx context.Context,
	userID string,
	subscription domain.Subscription,
) (domain.User, error) {
	if !subscription.Valid() {
		return domain.User{}, fmt.Errorf("%w: unknown subscription %q", ErrValidation, subscription)
	}

	if err := s.Store.Users().UpdateSubscription(ctx, userID, subscription); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to update subscription: %w", err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to reload user: %w", err)
	}
	return user, nil
}

func (s *AuthService) sendVerification(ctx context.Context, user domain.User) error {
	return s.Mailer.Send(ctx,
		user.Email,
		mailer.VerificationSubject(),
		mailer.VerificationBody(s.BaseURL, user.VerificationToken),
	)
}

// normalizeEmail lowercases, trims and strips any display-name decoration so
// only the bare address is ever stored or matched against.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	return addr.Address, nil
}

// gravatarURL derives the default avatar from the account email, same scheme
// Gravatar uses everywhere: md5 of the trimmed, lowercased address.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(email)) // #nosec G401 - content addressing only
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:])
}

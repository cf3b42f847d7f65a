package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/helioslabs/phonebook/internal/api/store"
)

// Verify consumes a verification token from the emailed link. Inside a
// transaction so two clicks on the same link cannot both succeed: the second
// lookup finds the token already nulled and reports not found, exactly like a
// token that never existed.
func (s *AuthService) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrNotFound
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByVerificationToken(ctx, token)
		if err != nil {
			return err
		}
		return tx.Users().MarkVerified(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}

// ResendVerification re-sends the verification mail for a pending account.
// Unlike the registration-time send this one is awaited: the caller asked for
// exactly this mail, so a delivery failure is their error to see.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if user.Verified {
		return ErrAlreadyVerified
	}

	if err := s.sendVerification(ctx, user); err != nil {
		return fmt.Errorf("failed to send verification mail: %w", err)
	}
	return nil
}

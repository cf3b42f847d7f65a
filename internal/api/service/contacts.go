package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/helioslabs/phonebook/internal/api/domain"
	"github.com/helioslabs/phonebook/internal/api/store"
	"github.com/helioslabs/phonebook/pkg/idx"
)

// ContactsService manages a user's address book. Every operation is scoped to
// the owner; a contact id belonging to someone else behaves exactly like one
// that does not exist.
type ContactsService struct {
	Store store.Store
}

// ContactInput is the caller-supplied portion of a contact.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Favorite bool
}

func (in *ContactInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return fmt.Errorf("%w: name, email and phone are required", ErrValidation)
	}
	return nil
}

// List returns all contacts owned by ownerID, newest first.
func (s *ContactsService) List(ctx context.Context, ownerID string) ([]domain.Contact, error) {
	contacts, err := s.Store.Contacts().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Get returns a single owned contact.
func (s *ContactsService) Get(ctx context.Context, ownerID, id string) (domain.Contact, error) {
	contact, err := s.Store.Contacts().GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Contact{}, ErrNotFound
		}
		return domain.Contact{}, fmt.Errorf("failed to load contact: %w", err)
	}
	return contact, nil
}

// Create adds a contact to ownerID's book.
func (s *ContactsService) Create(
	ctx context.Context,
	ownerID string,
	in ContactInput,
) (domain.Contact, error) {
	if err := in.validate(); err != nil {
		return domain.Contact{}, err
	}

	now := time.Now().UTC()
	contact := domain.Contact{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Favorite:  in.Favorite,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Contacts().Create(ctx, contact); err != nil {
		return domain.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// Update replaces the mutable fields of an owned contact.
func (s *ContactsService) Update(
	ctx context.Context,
	ownerID, id string,
	in ContactInput,
) (domain.Contact, error) {
	if err := in.validate(); err != nil {
		return domain.Contact{}, err
	}

	contact := domain.Contact{
		ID:       id,
		OwnerID:  ownerID,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Favorite: in.Favorite,
	}
	if err := s.Store.Contacts().Update(ctx, contact); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Contact{}, ErrNotFound
		}
		return domain.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}
	return s.Get(ctx, ownerID, id)
}

// SetFavorite flips just the favorite flag.
func (s *ContactsService) SetFavorite(
	ctx context.Context,
	ownerID, id string,
	favorite bool,
) (domain.Contact, error) {
	if err := s.Store.Contacts().UpdateFavorite(ctx, ownerID, id, favorite); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Contact{}, ErrNotFound
		}
		return domain.Contact{}, fmt.Errorf("failed to update favorite: %w", err)
	}
	return s.Get(ctx, ownerID, id)
}

// Delete removes an owned contact.
func (s *ContactsService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.Store.Contacts().Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

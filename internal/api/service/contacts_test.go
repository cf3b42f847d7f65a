package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioslabs/phonebook/internal/api/domain"
	"github.com/helioslabs/phonebook/internal/api/store"
	"github.com/helioslabs/phonebook/pkg/idx"
)

func seedUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2Fs$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		Subscription: domain.SubscriptionStarter,
		Verified:     true,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func TestContactsCRUD(t *testing.T) {
	st := newTestStore(t)
	svc := &ContactsService{Store: st}
	ctx := context.Background()

	owner := seedUser(t, st, "owner@example.com")

	input := ContactInput{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+44 20 7946 0000"}

	created, err := svc.Create(ctx, owner.ID, input)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, owner.ID, created.OwnerID)
	assert.False(t, created.Favorite)

	t.Run("get and list", func(t *testing.T) {
		got, err := svc.Get(ctx, owner.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Name, got.Name)

		all, err := svc.List(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, owner.ID, created.ID, ContactInput{
			Name:     "Ada King",
			Email:    "ada@example.org",
			Phone:    "+44 20 7946 0001",
			Favorite: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada King", updated.Name)
		assert.True(t, updated.Favorite)
	})

	t.Run("favorite flag alone", func(t *testing.T) {
		got, err := svc.SetFavorite(ctx, owner.ID, created.ID, false)
		require.NoError(t, err)
		assert.False(t, got.Favorite)
		assert.Equal(t, "Ada King", got.Name, "other fields untouched")
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(ctx, owner.ID, ContactInput{Name: "No Phone", Email: "x@example.com"})
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.Update(ctx, owner.ID, created.ID, ContactInput{})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, owner.ID, created.ID))
		_, err := svc.Get(ctx, owner.ID, created.ID)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, svc.Delete(ctx, owner.ID, created.ID), ErrNotFound)
	})
}

func TestContactsOwnerIsolation(t *testing.T) {
	st := newTestStore(t)
	svc := &ContactsService{Store: st}
	ctx := context.Background()

	alice := seedUser(t, st, "alice@example.com")
	mallory := seedUser(t, st, "mallory@example.com")

	contact, err := svc.Create(ctx, alice.ID, ContactInput{
		Name: "Private", Email: "p@example.com", Phone: "555-0100",
	})
	require.NoError(t, err)

	// Another owner sees someone else's contact id as nonexistent.
	_, err = svc.Get(ctx, mallory.ID, contact.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, mallory.ID, contact.ID, ContactInput{
		Name: "Stolen", Email: "s@example.com", Phone: "555-0101",
	})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetFavorite(ctx, mallory.ID, contact.ID, true)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, mallory.ID, contact.ID), ErrNotFound)

	list, err := svc.List(ctx, mallory.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Alice's copy is untouched.
	got, err := svc.Get(ctx, alice.ID, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", got.Name)
}

func TestContactsListOrder(t *testing.T) {
	st := newTestStore(t)
	svc := &ContactsService{Store: st}
	ctx := context.Background()

	owner := seedUser(t, st, "order@example.com")

	first, err := svc.Create(ctx, owner.ID, ContactInput{Name: "First", Email: "1@example.com", Phone: "1"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, owner.ID, ContactInput{Name: "Second", Email: "2@example.com", Phone: "2"})
	require.NoError(t, err)

	list, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, first.ID, list[1].ID)
}

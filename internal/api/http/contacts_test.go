package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioslabs/phonebook/pkg/apisdk"
)

func TestContactsEndpoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signup(t, "book@example.com", "s3cret-enough")
	_, err := env.client.Login(ctx, "book@example.com", "s3cret-enough")
	require.NoError(t, err)

	created, err := env.client.AddContact(ctx, apisdk.ContactRequest{
		Name:  "Grace Hopper",
		Email: "grace@example.com",
		Phone: "555-0199",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	t.Run("list and get", func(t *testing.T) {
		list, err := env.client.ListContacts(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)

		got, err := env.client.GetContact(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", got.Name)
	})

	t.Run("update", func(t *testing.T) {
		updated, err := env.client.UpdateContact(ctx, created.ID, apisdk.ContactRequest{
			Name:     "Rear Admiral Hopper",
			Email:    "grace@example.org",
			Phone:    "555-0200",
			Favorite: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Rear Admiral Hopper", updated.Name)
		assert.True(t, updated.Favorite)
	})

	t.Run("favorite", func(t *testing.T) {
		got, err := env.client.UpdateFavorite(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, got.Favorite)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := env.client.AddContact(ctx, apisdk.ContactRequest{Name: "No Details"})
		requireAPIError(t, err, http.StatusBadRequest, "Missing required field")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := env.client.GetContact(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK")
		requireAPIError(t, err, http.StatusNotFound, "Not found")
	})

	t.Run("delete", func(t *testing.T) {
		msg, err := env.client.DeleteContact(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Contact deleted", msg.Message)

		_, err = env.client.GetContact(ctx, created.ID)
		requireAPIError(t, err, http.StatusNotFound, "Not found")
	})
}

func TestContactsAreOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signup(t, "alice@example.com", "s3cret-enough")
	_, err := env.client.Login(ctx, "alice@example.com", "s3cret-enough")
	require.NoError(t, err)

	created, err := env.client.AddContact(ctx, apisdk.ContactRequest{
		Name: "Secret", Email: "s@example.com", Phone: "555-0100",
	})
	require.NoError(t, err)

	// A second account sharing the same server cannot see Alice's contact.
	other := apisdk.NewClient(env.server.URL)
	_, err = other.Register(ctx, "bob@example.com", "s3cret-enough", "")
	require.NoError(t, err)
	_, err = other.Verify(ctx, env.verificationToken(t, "bob@example.com"))
	require.NoError(t, err)
	_, err = other.Login(ctx, "bob@example.com", "s3cret-enough")
	require.NoError(t, err)

	_, err = other.GetContact(ctx, created.ID)
	requireAPIError(t, err, http.StatusNotFound, "Not found")

	list, err := other.ListContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

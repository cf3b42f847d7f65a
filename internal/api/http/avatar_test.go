package http

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestAvatarUpload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signup(t, "pic@example.com", "s3cret-enough")
	_, err := env.client.Login(ctx, "pic@example.com", "s3cret-enough")
	require.NoError(t, err)

	resp, err := env.client.UploadAvatar(ctx, "me.png", pngImage(t, 500, 300))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.AvatarURL, "/avatars/"), resp.AvatarURL)

	// The processed file is served back over the static route.
	got, err := http.Get(env.server.URL + resp.AvatarURL)
	require.NoError(t, err)
	defer got.Body.Close()
	assert.Equal(t, http.StatusOK, got.StatusCode)

	img, _, err := image.Decode(got.Body)
	require.NoError(t, err)
	assert.Equal(t, 250, img.Bounds().Dx())
	assert.Equal(t, 250, img.Bounds().Dy())
}

func TestAvatarUploadRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signup(t, "nopic@example.com", "s3cret-enough")
	_, err := env.client.Login(ctx, "nopic@example.com", "s3cret-enough")
	require.NoError(t, err)

	t.Run("not an image", func(t *testing.T) {
		_, err := env.client.UploadAvatar(ctx, "notes.txt", strings.NewReader("plain text"))
		requireAPIError(t, err, http.StatusInternalServerError, "Avatar processing failed")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		saved := env.client.Token()
		env.client.SetToken("")
		defer env.client.SetToken(saved)

		_, err := env.client.UploadAvatar(ctx, "me.png", pngImage(t, 300, 300))
		requireAPIError(t, err, http.StatusUnauthorized, "Not authorized")
	})
}

func TestAvatarStaticTraversal(t *testing.T) {
	env := newTestEnv(t)

	// Nothing above the avatars directory is reachable.
	resp, err := http.Get(env.server.URL + "/avatars/..%2F..%2Fetc%2Fpasswd")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImagePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func newAvatarService(t *testing.T) *AvatarService {
	t.Helper()

	st := newTestStore(t)
	return &AvatarService{
		Store:     st,
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
		PublicDir: filepath.Join(t.TempDir(), "public"),
		TmpDir:    filepath.Join(t.TempDir(), "tmp"),
	}
}

func TestAvatarProcess(t *testing.T) {
	svc := newAvatarService(t)
	ctx := context.Background()

	owner := seedUser(t, svc.Store, "avatar@example.com")

	avatarURL, err := svc.Process(ctx, owner.ID, "photo.png", testImagePNG(t, 600, 400))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(avatarURL, "/avatars/"+owner.ID+"_"), avatarURL)

	// Written image is exactly square at the avatar size.
	onDisk := filepath.Join(svc.PublicDir, "avatars", strings.TrimPrefix(avatarURL, "/avatars/"))
	img, err := imaging.Open(onDisk)
	require.NoError(t, err)
	assert.Equal(t, 250, img.Bounds().Dx())
	assert.Equal(t, 250, img.Bounds().Dy())

	// User record points at the new file.
	stored, err := svc.Store.Users().GetUserByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, avatarURL, stored.AvatarURL)

	// Spool directory is drained after a successful run.
	entries, err := os.ReadDir(svc.TmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAvatarProcessRejectsNonImage(t *testing.T) {
	svc := newAvatarService(t)
	owner := seedUser(t, svc.Store, "garbage@example.com")

	_, err := svc.Process(context.Background(), owner.ID, "notes.txt",
		strings.NewReader("definitely not pixels"))
	require.ErrorIs(t, err, ErrUploadFailed)

	stored, err := svc.Store.Users().GetUserByID(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.AvatarURL)
}

func TestAvatarProcessUnknownUser(t *testing.T) {
	svc := newAvatarService(t)

	_, err := svc.Process(context.Background(), "01JUNKJUNKJUNKJUNKJUNKJUNK", "photo.png",
		testImagePNG(t, 300, 300))
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "photo.png", sanitizeFilename("photo.png"))
	assert.Equal(t, "photo.jpg", sanitizeFilename("../../etc/photo.jpg"))
	assert.Equal(t, "shell.jpg", sanitizeFilename("shell.php"))
	assert.Equal(t, "noext.jpg", sanitizeFilename("noext"))
	assert.Equal(t, "pic.jpeg", sanitizeFilename("C:\\Users\\me\\pic.jpeg"))
}

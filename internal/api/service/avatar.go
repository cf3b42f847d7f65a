package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/helioslabs/phonebook/internal/api/store"
)

const avatarSize = 250

// AvatarService turns uploaded images into fixed-size avatars. Uploads are
// spooled to TmpDir first so a half-written or undecodable file never lands
// in the public directory.
type AvatarService struct {
	Store     store.Store
	Logger    *slog.Logger
	PublicDir string // served statically under /avatars/
	TmpDir    string // upload spool, swept by the janitor
}

// Process stores the upload, resizes it to a square avatar and points the
// user record at the result. Returns the public URL path of the new avatar.
func (s *AvatarService) Process(
	ctx context.Context,
	userID, filename string,
	upload io.Reader,
) (string, error) {
	tmpPath, err := s.spool(userID, upload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	defer os.Remove(tmpPath)

	img, err := imaging.Open(tmpPath)
	if err != nil {
		return "", fmt.Errorf("%w: not a decodable image: %w", ErrUploadFailed, err)
	}
	img = imaging.Fill(img, avatarSize, avatarSize, imaging.Center, imaging.Lanczos)

	name := userID + "_" + sanitizeFilename(filename)
	dstDir := filepath.Join(s.PublicDir, "avatars")
	if err := os.MkdirAll(dstDir, 0o750); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err := imaging.Save(img, filepath.Join(dstDir, name)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	avatarURL := "/avatars/" + name
	if err := s.Store.Users().UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("failed to update avatar url: %w", err)
	}

	return avatarURL, nil
}

// spool writes the upload to a temp file and returns its path.
func (s *AvatarService) spool(userID string, upload io.Reader) (string, error) {
	if err := os.MkdirAll(s.TmpDir, 0o750); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(s.TmpDir, userID+"_*")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, upload); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// sanitizeFilename strips any path components from a client-supplied name and
// forces an extension the image encoder knows, defaulting to jpg.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff", ".bmp":
		return strings.TrimSuffix(name, filepath.Ext(name)) + ext
	case "":
		return name + ".jpg"
	default:
		return strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	}
}

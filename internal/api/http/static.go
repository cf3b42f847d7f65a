package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/helioslabs/phonebook/pkg/apisdk"
)

// AvatarFileHandler serves processed avatar images from the public directory.
// Only flat filenames are honored; anything with a path separator after
// cleaning is rejected, so the handler cannot be walked out of its directory.
func AvatarFileHandler(publicDir string) http.HandlerFunc {
	dir := filepath.Join(publicDir, "avatars")

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/avatars/")
		name = filepath.Clean(name)
		if name == "." || name == "/" || strings.ContainsAny(name, `/\`) {
			apisdk.ErrNotFound.WriteError(w)
			return
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			apisdk.ErrNotFound.WriteError(w)
			return
		}

		http.ServeFile(w, r, path)
	}
}

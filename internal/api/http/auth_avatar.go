package http

import (
	"net/http"

	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/httpx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

// maxAvatarUpload bounds the multipart body so a hostile client cannot spool
// arbitrarily large files to disk.
const maxAvatarUpload = 10 << 20 // 10 MiB

type AvatarHandler struct {
	AvatarService *service.AvatarService
}

// ServeHTTP accepts a multipart upload in the "avatar" field, resizes it and
// returns the public URL of the processed image.
func (h *AvatarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarUpload)
	file, header, err := r.FormFile("avatar")
	if err != nil {
		apisdk.ErrMissingFields.WriteError(w)
		return
	}
	defer file.Close()

	avatarURL, err := h.AvatarService.Process(ctx, user.ID, header.Filename, file)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("avatar updated", "user_id", user.ID, "avatar_url", avatarURL)
	httpx.WriteJSON(w, http.StatusOK, apisdk.AvatarResponse{AvatarURL: avatarURL})
}

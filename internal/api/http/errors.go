package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
)

// writeServiceError translates service-layer sentinels into the canonical
// API error bodies. Anything unrecognised is a 500 and gets logged; the
// mapped cases are expected outcomes and stay quiet.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		apisdk.ErrMissingFields.WriteError(w)
	case errors.Is(err, service.ErrDuplicateEmail):
		apisdk.ErrEmailInUse.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		apisdk.ErrWrongCredentials.WriteError(w)
	case errors.Is(err, service.ErrNotVerified):
		apisdk.ErrEmailNotVerified.WriteError(w)
	case errors.Is(err, service.ErrUnauthorized):
		apisdk.ErrNotAuthorized.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		apisdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrAlreadyVerified):
		apisdk.ErrAlreadyVerified.WriteError(w)
	case errors.Is(err, service.ErrUploadFailed):
		apisdk.ErrUploadFailed.WriteError(w)
	default:
		log.Error("unhandled service error", "err", err)
		apisdk.ErrServerError.WriteError(w)
	}
}

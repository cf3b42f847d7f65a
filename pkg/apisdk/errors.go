package apisdk

import (
	"fmt"
	"net/http"

	"github.com/helioslabs/phonebook/pkg/httpx"
)

// APIError is the uniform error body: {"message": "..."} plus a status code.
// It doubles as the server-side writer and the client-side error value.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// WriteError writes the error as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.Status, e)
}

// NewAPIError builds a one-off error response.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// The canonical error responses. Login failures share one message so the
// response never reveals whether the email or the password was wrong.
var (
	ErrMissingFields       = NewAPIError(http.StatusBadRequest, "Missing required field")
	ErrInvalidSubscription = NewAPIError(http.StatusBadRequest, "Subscription must be one of: starter, pro, business")
	ErrEmailInUse          = NewAPIError(http.StatusConflict, "Email in use")
	ErrWrongCredentials    = NewAPIError(http.StatusUnauthorized, "Email or password is wrong")
	ErrEmailNotVerified    = NewAPIError(http.StatusUnauthorized, "Email not verified")
	ErrNotAuthorized       = NewAPIError(http.StatusUnauthorized, "Not authorized")
	ErrNotFound            = NewAPIError(http.StatusNotFound, "Not found")
	ErrUserNotFound        = NewAPIError(http.StatusNotFound, "User not found")
	ErrAlreadyVerified     = NewAPIError(http.StatusBadRequest, "Verification has already been passed")
	ErrUploadFailed        = NewAPIError(http.StatusInternalServerError, "Avatar processing failed")
	ErrServerError         = NewAPIError(http.StatusInternalServerError, "Internal server error")
)

package http

import (
	"encoding/json"
	"net/http"

	"github.com/helioslabs/phonebook/internal/api/domain"
	"github.com/helioslabs/phonebook/internal/api/service"
	"github.com/helioslabs/phonebook/pkg/apisdk"
	"github.com/helioslabs/phonebook/pkg/httpx"
	"github.com/helioslabs/phonebook/pkg/slogx"
)

type ContactsHandler struct {
	ContactsService *service.ContactsService
}

func contactResponse(c domain.Contact) apisdk.ContactResponse {
	return apisdk.ContactResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Favorite: c.Favorite,
	}
}

// HandleList returns the caller's full address book, newest first.
func (h *ContactsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	contacts, err := h.ContactsService.List(ctx, user.ID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	out := make([]apisdk.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one owned contact.
func (h *ContactsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	contact, err := h.ContactsService.Get(ctx, user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, contactResponse(contact))
}

// HandleCreate adds a contact and answers 201.
func (h *ContactsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	var req apisdk.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrMissingFields.WriteError(w)
		return
	}

	contact, err := h.ContactsService.Create(ctx, user.ID, service.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: req.Favorite,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("contact created", "user_id", user.ID, "contact_id", contact.ID)
	httpx.WriteJSON(w, http.StatusCreated, contactResponse(contact))
}

// HandleUpdate replaces an owned contact's fields.
func (h *ContactsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	var req apisdk.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrMissingFields.WriteError(w)
		return
	}

	contact, err := h.ContactsService.Update(ctx, user.ID, r.PathValue("id"), service.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: req.Favorite,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, contactResponse(contact))
}

// HandleFavorite flips just the favorite flag. The field is required; an
// absent body distinguishes from an explicit false.
func (h *ContactsHandler) HandleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	var req apisdk.UpdateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Favorite == nil {
		apisdk.ErrMissingFields.WriteError(w)
		return
	}

	contact, err := h.ContactsService.SetFavorite(ctx, user.ID, r.PathValue("id"), *req.Favorite)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, contactResponse(contact))
}

// HandleDelete removes an owned contact.
func (h *ContactsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		apisdk.ErrNotAuthorized.WriteError(w)
		return
	}

	if err := h.ContactsService.Delete(ctx, user.ID, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("contact deleted", "user_id", user.ID, "contact_id", r.PathValue("id"))
	httpx.WriteJSON(w, http.StatusOK, apisdk.MessageResponse{Message: "Contact deleted"})
}

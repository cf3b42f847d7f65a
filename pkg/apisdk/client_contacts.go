package apisdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListContacts returns all of the authenticated user's contacts.
func (c *Client) ListContacts(ctx context.Context) ([]ContactResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/contacts", nil, true)
	if err != nil {
		return nil, err
	}

	var out []ContactResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetContact returns a single owned contact.
func (c *Client) GetContact(ctx context.Context, id string) (*ContactResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/contacts/"+url.PathEscape(id), nil, true)
	if err != nil {
		return nil, err
	}

	var out ContactResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddContact creates a new contact in the authenticated user's book.
func (c *Client) AddContact(ctx context.Context, req ContactRequest) (*ContactResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/contacts", req, true)
	if err != nil {
		return nil, err
	}

	var out ContactResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContact replaces an owned contact's fields.
func (c *Client) UpdateContact(
	ctx context.Context,
	id string,
	req ContactRequest,
) (*ContactResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, "/api/contacts/"+url.PathEscape(id), req, true)
	if err != nil {
		return nil, err
	}

	var out ContactResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFavorite flips the favorite flag on an owned contact.
func (c *Client) UpdateFavorite(
	ctx context.Context,
	id string,
	favorite bool,
) (*ContactResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPatch,
		"/api/contacts/"+url.PathEscape(id)+"/favorite",
		UpdateFavoriteRequest{Favorite: &favorite}, true)
	if err != nil {
		return nil, err
	}

	var out ContactResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact removes an owned contact.
func (c *Client) DeleteContact(ctx context.Context, id string) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodDelete, "/api/contacts/"+url.PathEscape(id), nil, true)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

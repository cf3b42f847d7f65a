package sqlite

import (
	"context"

	"github.com/helioslabs/phonebook/internal/api/domain"
	"github.com/helioslabs/phonebook/internal/api/store"
)

type contactsRepo struct {
	q dbtx
}

const contactColumns = `id, owner_id, name, email, phone, favorite, created_at, updated_at`

func (r *contactsRepo) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]domain.Contact, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE owner_id = ? ORDER BY created_at DESC, id DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Favorite,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *contactsRepo) GetByID(ctx context.Context, ownerID, id string) (domain.Contact, error) {
	var c domain.Contact
	err := r.q.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ? AND owner_id = ?`,
		id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Favorite,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Contact{}, mapNotFound(err)
	}
	return c, nil
}

func (r *contactsRepo) Create(ctx context.Context, c domain.Contact) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO contacts (id, owner_id, name, email, phone, favorite)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, c.Email, c.Phone, c.Favorite,
	)
	return mapConflict(err)
}

func (r *contactsRepo) Update(ctx context.Context, c domain.Contact) error {
	return r.exec(ctx, `
		UPDATE contacts SET name = ?, email = ?, phone = ?, favorite = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND owner_id = ?`,
		c.Name, c.Email, c.Phone, c.Favorite, c.ID, c.OwnerID)
}

func (r *contactsRepo) UpdateFavorite(
	ctx context.Context,
	ownerID, id string,
	favorite bool,
) error {
	return r.exec(ctx, `
		UPDATE contacts SET favorite = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND owner_id = ?`,
		favorite, id, ownerID)
}

func (r *contactsRepo) Delete(ctx context.Context, ownerID, id string) error {
	return r.exec(ctx, `DELETE FROM contacts WHERE id = ? AND owner_id = ?`, id, ownerID)
}

func (r *contactsRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

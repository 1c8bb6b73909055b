package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (*usecase.ItemView, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO items (id, owner_id, name, description, available)
		VALUES ($1, $2, $3, $4, $5)`,
		i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create item", err)
	}

	return itemToView(i), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	var (
		itemID, ownerID   uuid.UUID
		name, description string
		available         bool
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, description, available
		FROM items WHERE id = $1`, id).
		Scan(&itemID, &ownerID, &name, &description, &available)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return item.ReconstructItem(itemID, ownerID, name, description, available), nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) (*usecase.ItemView, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE items SET name = $2, description = $3, available = $4
		WHERE id = $1`,
		i.ID(), i.Name(), i.Description(), i.Available())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}

	return itemToView(i), nil
}

func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*usecase.ItemView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, description, available
		FROM items WHERE owner_id = $1
		ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	defer rows.Close()

	return scanItemViews(rows)
}

func (r *ItemRepository) SearchAvailable(ctx context.Context, text string) ([]*usecase.ItemView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, description, available
		FROM items
		WHERE available AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY created_at`, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()

	return scanItemViews(rows)
}

type itemRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanItemViews(rows itemRows) ([]*usecase.ItemView, error) {
	views := []*usecase.ItemView{}
	for rows.Next() {
		var view usecase.ItemView
		if err := rows.Scan(&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}

func itemToView(i *item.Item) *usecase.ItemView {
	return &usecase.ItemView{
		ID:          i.ID(),
		OwnerID:     i.OwnerID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
	}
}

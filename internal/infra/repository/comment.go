package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type CommentRepository struct {
	db db.DBTX
}

func NewCommentRepository(dbtx db.DBTX) *CommentRepository {
	return &CommentRepository{db: dbtx}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (*usecase.CommentView, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO comments (id, item_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID(), c.ItemID(), c.AuthorID(), c.Text(), c.CreatedAt())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create comment", err)
	}

	var view usecase.CommentView
	err = r.db.QueryRow(ctx, `
		SELECT c.id, c.text, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1`, c.ID()).
		Scan(&view.ID, &view.Text, &view.AuthorName, &view.Created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read created comment", err)
	}
	return &view, nil
}

func (r *CommentRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*usecase.CommentView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.text, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created_at`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	views := []*usecase.CommentView{}
	for rows.Next() {
		var view usecase.CommentView
		if err := rows.Scan(&view.ID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return views, nil
}

package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*usecase.UserView, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		u.ID(), u.Name(), u.Email().String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return &usecase.UserView{ID: u.ID(), Name: u.Name(), Email: u.Email().String()}, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.UserView, error) {
	var view usecase.UserView
	err := r.db.QueryRow(ctx, `SELECT id, name, email FROM users WHERE id = $1`, id).
		Scan(&view.ID, &view.Name, &view.Email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (*usecase.UserView, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET name = $2, email = $3 WHERE id = $1`,
		u.ID(), u.Name(), u.Email().String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return &usecase.UserView{ID: u.ID(), Name: u.Name(), Email: u.Email().String()}, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*usecase.UserView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email FROM users ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := []*usecase.UserView{}
	for rows.Next() {
		var view usecase.UserView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return views, nil
}

package usecase

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmailTaken = errs.New("email address already in use")

type CreateUserParams struct {
	Name  string
	Email string
}

type UpdateUserParams struct {
	Name  *string
	Email *string
}

type UserUseCase interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*UserView, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserView, error)
	UpdateUser(ctx context.Context, id uuid.UUID, patch UpdateUserParams) (*UserView, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context) ([]*UserView, error)
}

type userUseCaseImpl struct {
	userRepo UserRepository
}

func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCaseImpl{userRepo: userRepo}
}

func (u *userUseCaseImpl) CreateUser(ctx context.Context, params CreateUserParams) (*UserView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}

	usr, err := user.NewUser(params.Name, email)
	if err != nil {
		return nil, err
	}

	view, err := u.userRepo.Create(ctx, usr)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return view, nil
}

func (u *userUseCaseImpl) GetUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (u *userUseCaseImpl) UpdateUser(ctx context.Context, id uuid.UUID, patch UpdateUserParams) (*UserView, error) {
	current, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	name := current.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	emailValue := current.Email
	if patch.Email != nil {
		emailValue = *patch.Email
	}

	email, err := user.NewEmail(emailValue)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, user.ErrEmptyName
	}

	view, err := u.userRepo.Update(ctx, user.ReconstructUser(id, name, email))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return view, nil
}

func (u *userUseCaseImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := u.userRepo.Delete(ctx, id)
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (u *userUseCaseImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	return u.userRepo.FindAll(ctx)
}

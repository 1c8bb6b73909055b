//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase"
	"shareit/tests/common/builder"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func duplicateKeyErr() error {
	return infra.WrapRepoErr("insert user", errors.New("duplicate key value violates unique constraint"), infra.KindDuplicateKey)
}

type UserUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	userRepo *usecasemock.MockUserRepository
	uc       usecase.UserUseCase
}

func (s *UserUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.userRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.uc = usecase.NewUserUseCase(s.userRepo)
}

func (s *UserUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserUseCaseSuite(t *testing.T) {
	suite.Run(t, new(UserUseCaseTestSuite))
}

func (s *UserUseCaseTestSuite) TestCreateUser() {
	ctx := context.Background()

	s.Run("creates a user", func() {
		b := builder.NewUserBuilder()
		want := b.BuildView()

		s.userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *user.User) (*usecase.UserView, error) {
				s.Equal(b.Name, u.Name())
				s.Equal(b.Email, u.Email().String())
				return want, nil
			})

		got, err := s.uc.CreateUser(ctx, usecase.CreateUserParams{Name: b.Name, Email: b.Email})
		s.NoError(err)
		s.Equal(want, got)
	})

	s.Run("invalid email fails before the store", func() {
		_, err := s.uc.CreateUser(ctx, usecase.CreateUserParams{Name: "A", Email: "not-an-email"})
		s.ErrorIs(err, user.ErrInvalidEmail)
	})

	s.Run("duplicate email maps to taken", func() {
		b := builder.NewUserBuilder()
		s.userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, duplicateKeyErr())

		_, err := s.uc.CreateUser(ctx, usecase.CreateUserParams{Name: b.Name, Email: b.Email})
		s.ErrorIs(err, usecase.ErrEmailTaken)
	})
}

func (s *UserUseCaseTestSuite) TestUpdateUser() {
	ctx := context.Background()

	s.Run("patch keeps omitted fields", func() {
		id := uuid.New()
		current := &usecase.UserView{ID: id, Name: "Old Name", Email: "old@example.com"}
		newName := "New Name"

		s.userRepo.EXPECT().FindByID(ctx, id).Return(current, nil)
		s.userRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *user.User) (*usecase.UserView, error) {
				s.Equal(newName, u.Name())
				s.Equal("old@example.com", u.Email().String())
				return &usecase.UserView{ID: id, Name: newName, Email: "old@example.com"}, nil
			})

		got, err := s.uc.UpdateUser(ctx, id, usecase.UpdateUserParams{Name: &newName})
		s.NoError(err)
		s.Equal(newName, got.Name)
	})

	s.Run("unknown user", func() {
		id := uuid.New()
		s.userRepo.EXPECT().FindByID(ctx, id).Return(nil, notFoundErr())

		_, err := s.uc.UpdateUser(ctx, id, usecase.UpdateUserParams{})
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("patched email collides", func() {
		id := uuid.New()
		current := &usecase.UserView{ID: id, Name: "Name", Email: "old@example.com"}
		taken := "taken@example.com"

		s.userRepo.EXPECT().FindByID(ctx, id).Return(current, nil)
		s.userRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil, duplicateKeyErr())

		_, err := s.uc.UpdateUser(ctx, id, usecase.UpdateUserParams{Email: &taken})
		s.ErrorIs(err, usecase.ErrEmailTaken)
	})
}

func (s *UserUseCaseTestSuite) TestDeleteUser() {
	ctx := context.Background()

	s.Run("deletes", func() {
		id := uuid.New()
		s.userRepo.EXPECT().Delete(ctx, id).Return(nil)
		s.NoError(s.uc.DeleteUser(ctx, id))
	})

	s.Run("unknown user", func() {
		id := uuid.New()
		s.userRepo.EXPECT().Delete(ctx, id).Return(notFoundErr())
		s.ErrorIs(s.uc.DeleteUser(ctx, id), usecase.ErrUserNotFound)
	})
}

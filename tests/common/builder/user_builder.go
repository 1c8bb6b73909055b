//go:build unit || e2e

package builder

import (
	domuser "shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:  "Test User",
		Email: "test@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(u.Name, email)
}

func (u *UserBuilder) BuildView() *usecase.UserView {
	return &usecase.UserView{
		ID:    uuid.New(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  u.Name,
		Email: u.Email,
	}
}

package response

import (
	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUserView(v *usecase.UserView) *UserResponse {
	return &UserResponse{
		ID:    v.ID,
		Name:  v.Name,
		Email: v.Email,
	}
}

func FromUserViews(views []*usecase.UserView) []*UserResponse {
	out := make([]*UserResponse, len(views))
	for i, v := range views {
		out[i] = FromUserView(v)
	}
	return out
}

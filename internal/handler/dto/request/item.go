package request

import (
	"shareit/internal/usecase"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
}

func (r CreateItemRequest) ToParams() usecase.CreateItemParams {
	return usecase.CreateItemParams{
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
	}
}

// Absent fields stay nil so the usecase can patch only what was sent.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

func (r UpdateItemRequest) ToParams() usecase.UpdateItemParams {
	return usecase.UpdateItemParams{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

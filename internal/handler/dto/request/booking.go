package request

import (
	"time"

	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		ItemID: r.ItemID,
		Start:  r.Start,
		End:    r.End,
	}
}

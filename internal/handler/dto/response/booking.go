package response

import (
	"time"

	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type BookingItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingUserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID     uuid.UUID      `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status"`
	Item   BookingItemRef `json:"item"`
	Booker BookingUserRef `json:"booker"`
}

func FromBookingView(v *usecase.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Item: BookingItemRef{
			ID:   v.Item.ID,
			Name: v.Item.Name,
		},
		Booker: BookingUserRef{
			ID:   v.Booker.ID,
			Name: v.Booker.Name,
		},
	}
}

func FromBookingViews(views []*usecase.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}

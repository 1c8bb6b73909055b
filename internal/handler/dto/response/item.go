package response

import (
	"time"

	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type BookingShortRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
}

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingShortRef   `json:"lastBooking"`
	NextBooking *BookingShortRef   `json:"nextBooking"`
	Comments    []*CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(v *usecase.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
	}
}

func FromItemViews(views []*usecase.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(views))
	for i, v := range views {
		out[i] = FromItemView(v)
	}
	return out
}

func FromItemDetailView(v *usecase.ItemDetailView) *ItemDetailResponse {
	resp := &ItemDetailResponse{
		ItemResponse: *FromItemView(&v.ItemView),
		LastBooking:  fromBookingRef(v.LastBooking),
		NextBooking:  fromBookingRef(v.NextBooking),
		Comments:     make([]*CommentResponse, len(v.Comments)),
	}
	for i, cv := range v.Comments {
		resp.Comments[i] = FromCommentView(cv)
	}
	return resp
}

func FromItemDetailViews(views []*usecase.ItemDetailView) []*ItemDetailResponse {
	out := make([]*ItemDetailResponse, len(views))
	for i, v := range views {
		out[i] = FromItemDetailView(v)
	}
	return out
}

func FromCommentView(v *usecase.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.Created,
	}
}

func fromBookingRef(ref *usecase.BookingRef) *BookingShortRef {
	if ref == nil {
		return nil
	}
	return &BookingShortRef{
		ID:       ref.ID,
		BookerID: ref.BookerID,
	}
}

//go:build unit || e2e

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Start      time.Time
	End        time.Time
	Status     string
	Now        time.Time
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ItemID:     uuid.New(),
		ItemName:   "Cordless Drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Test Booker",
		Start:      now.Add(24 * time.Hour),
		End:        now.Add(48 * time.Hour),
		Status:     "WAITING",
		Now:        now,
		CreatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Clone returns an independent copy so one base builder can fan out into
// several variants within a test.
func (b *BookingBuilder) Clone() *BookingBuilder {
	var dup BookingBuilder
	if err := copier.Copy(&dup, b); err != nil {
		panic(err)
	}
	return &dup
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.Now, b.ItemID, b.BookerID, b.Start, b.End)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		uuid.New(), b.ItemID, b.BookerID, b.Start, b.End,
		dombooking.Status(b.Status), b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *usecase.BookingView {
	return &usecase.BookingView{
		ID:     uuid.New(),
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item: usecase.ItemRef{
			ID:      b.ItemID,
			Name:    b.ItemName,
			OwnerID: b.OwnerID,
		},
		Booker: usecase.UserRef{
			ID:   b.BookerID,
			Name: b.BookerName,
		},
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

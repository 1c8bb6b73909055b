package usecase

import (
	"time"

	"github.com/google/uuid"
)

// Read models returned to the handler layer.

type ItemRef struct {
	ID      uuid.UUID
	Name    string
	OwnerID uuid.UUID
}

type UserRef struct {
	ID   uuid.UUID
	Name string
}

type BookingView struct {
	ID        uuid.UUID
	Start     time.Time
	End       time.Time
	Status    string
	Item      ItemRef
	Booker    UserRef
	CreatedAt time.Time
}

// BookingRef is the minimal annotation shown on an item: booking id and
// booker id only, a display hint rather than an authorization-bearing object.
type BookingRef struct {
	ID       uuid.UUID
	BookerID uuid.UUID
}

type ItemView struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
}

type ItemDetailView struct {
	ItemView
	LastBooking *BookingRef
	NextBooking *BookingRef
	Comments    []*CommentView
}

type CommentView struct {
	ID         uuid.UUID
	Text       string
	AuthorName string
	Created    time.Time
}

type UserView struct {
	ID    uuid.UUID
	Name  string
	Email string
}

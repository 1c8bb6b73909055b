package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotAwaitingApproval = errors.New("booking is not awaiting approval")

// Booking is the aggregate for one rental request. Identity, period, item and
// booker are immutable after creation; only status mutates, and only through
// Resolve while the booking is WAITING.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
}

// NewBooking validates the rental window against now and creates a WAITING
// booking with a fresh id. Item availability and owner checks belong to the
// usecase layer; they need the catalog.
func NewBooking(now time.Time, itemID, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	period, err := NewPeriod(now, start, end)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:        uuid.New(),
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    StatusWaiting,
		createdAt: now,
	}, nil
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, start, end time.Time, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    ReconstructPeriod(start, end),
		status:    status,
		createdAt: createdAt,
	}
}

// Resolve applies the owner's decision. Only WAITING bookings transition;
// APPROVED, REJECTED and CANCELED are all rejected uniformly, so a repeated
// decision and a decision on a canceled booking fail the same way.
func (b *Booking) Resolve(approve bool) error {
	if b.status != StatusWaiting {
		return ErrNotAwaitingApproval
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsBookedBy(userID uuid.UUID) bool {
	return b.bookerID == userID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

package usecase

import (
	"context"

	"shareit/internal/pkg/clock"

	"github.com/google/uuid"
)

// EligibilityChecker answers whether a user's approved rental of an item has
// already ended (the gate for commenting) and computes the nearest past and
// future approved bookings shown on an item.
type EligibilityChecker interface {
	HasCompletedRental(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
	NearestBookings(ctx context.Context, itemID uuid.UUID) (last, next *BookingRef, err error)
}

type eligibilityCheckerImpl struct {
	bookingRepo BookingRepository
	clock       clock.Clock
}

func NewEligibilityChecker(bookingRepo BookingRepository, clock clock.Clock) EligibilityChecker {
	return &eligibilityCheckerImpl{
		bookingRepo: bookingRepo,
		clock:       clock,
	}
}

// HasCompletedRental is true iff an APPROVED booking by userID of itemID has
// ended before now. WAITING, REJECTED and still-running APPROVED bookings do
// not qualify.
func (e *eligibilityCheckerImpl) HasCompletedRental(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	return e.bookingRepo.ExistsCompleted(ctx, userID, itemID, e.clock.Now())
}

// NearestBookings returns the most recent past-or-ongoing approved booking
// and the soonest future approved booking of the item. Either may be nil.
func (e *eligibilityCheckerImpl) NearestBookings(ctx context.Context, itemID uuid.UUID) (*BookingRef, *BookingRef, error) {
	now := e.clock.Now()

	last, err := e.bookingRepo.FindLastApproved(ctx, itemID, now)
	if err != nil {
		return nil, nil, err
	}

	next, err := e.bookingRepo.FindNextApproved(ctx, itemID, now)
	if err != nil {
		return nil, nil, err
	}

	return last, next, nil
}

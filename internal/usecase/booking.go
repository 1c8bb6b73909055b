package usecase

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRenterNotFound    = errs.New("nonexistent user attempting rental")
	ErrUserNotFound      = errs.New("nonexistent user")
	ErrItemNotFound      = errs.New("nonexistent item")
	ErrOwnItemRental     = errs.New("cannot rent own item")
	ErrItemUnavailable   = errs.New("item not available for rental")
	ErrBookingNotFound   = errs.New("nonexistent booking")
	ErrNotItemOwner      = errs.New("requester is not the item owner")
	ErrNotBookerNorOwner = errs.New("requester is neither booker nor owner")
)

type CreateBookingParams struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

// BookingUseCase is the booking lifecycle engine: creation with temporal
// validation, the WAITING -> APPROVED/REJECTED transition, viewer
// authorization, and the classification queries from both viewpoints.
type BookingUseCase interface {
	CreateBooking(ctx context.Context, requesterID uuid.UUID, params CreateBookingParams) (*BookingView, error)
	ApproveOrReject(ctx context.Context, requesterID, bookingID uuid.UUID, approve bool) (*BookingView, error)
	GetBooking(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, requesterID uuid.UUID, state string) ([]*BookingView, error)
	ListByOwner(ctx context.Context, requesterID uuid.UUID, state string) ([]*BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

// CreateBooking checks preconditions in a fixed order; the first failure
// wins. Booking one's own item is reported as not-found, not forbidden, so a
// stranger cannot distinguish a hidden item from a missing one. Overlap
// against other bookings of the same item is deliberately not checked;
// approval is the owner's manual decision.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, requesterID uuid.UUID, params CreateBookingParams) (*BookingView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRenterNotFound
	}

	itm, err := u.itemRepo.FindByID(ctx, params.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if itm.IsOwnedBy(requesterID) {
		return nil, ErrOwnItemRental
	}

	if !itm.Available() {
		return nil, ErrItemUnavailable
	}

	b, err := booking.NewBooking(u.clock.Now(), params.ItemID, requesterID, params.Start, params.End)
	if err != nil {
		return nil, err
	}

	return u.bookingRepo.Create(ctx, b)
}

// ApproveOrReject applies the owner's decision to a WAITING booking. The
// domain transition is re-run as a conditional update in the store, so two
// concurrent decisions on the same booking produce at most one winner.
func (u *bookingUseCaseImpl) ApproveOrReject(ctx context.Context, requesterID, bookingID uuid.UUID, approve bool) (*BookingView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	view, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.Item.OwnerID != requesterID {
		return nil, ErrNotItemOwner
	}

	b := booking.ReconstructBooking(view.ID, view.Item.ID, view.Booker.ID,
		view.Start, view.End, booking.Status(view.Status), view.CreatedAt)
	if err := b.Resolve(approve); err != nil {
		return nil, err
	}

	decided, changed, err := u.bookingRepo.DecideIfWaiting(ctx, bookingID, b.Status())
	if err != nil {
		return nil, err
	}
	if !changed {
		// Lost the race against a concurrent decision.
		return nil, booking.ErrNotAwaitingApproval
	}

	return decided, nil
}

// GetBooking is visible to the booker and the item owner only; strangers get
// the same not-found signal as a missing booking.
func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	view, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.Booker.ID != requesterID && view.Item.OwnerID != requesterID {
		return nil, ErrNotBookerNorOwner
	}

	return view, nil
}

func (u *bookingUseCaseImpl) ListByBooker(ctx context.Context, requesterID uuid.UUID, state string) ([]*BookingView, error) {
	parsed, err := u.checkListPreconditions(ctx, requesterID, state)
	if err != nil {
		return nil, err
	}
	return u.bookingRepo.FindByBooker(ctx, requesterID, parsed, u.clock.Now())
}

func (u *bookingUseCaseImpl) ListByOwner(ctx context.Context, requesterID uuid.UUID, state string) ([]*BookingView, error) {
	parsed, err := u.checkListPreconditions(ctx, requesterID, state)
	if err != nil {
		return nil, err
	}
	return u.bookingRepo.FindByOwner(ctx, requesterID, parsed, u.clock.Now())
}

func (u *bookingUseCaseImpl) checkListPreconditions(ctx context.Context, requesterID uuid.UUID, state string) (booking.State, error) {
	exists, err := u.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrUserNotFound
	}

	return booking.ParseState(state)
}

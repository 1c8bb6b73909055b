package usecase

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"

	"github.com/google/uuid"
)

// BookingRepository is the booking store. The twelve classification query
// variants (six states from two viewpoints) go through FindByBooker and
// FindByOwner with one parameterized state predicate each; results are always
// ordered by start descending.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// DecideIfWaiting performs the conditional transition (status must
	// still be WAITING) and re-reads the booking in the same transaction.
	// changed is false when the row was no longer WAITING, so concurrent
	// decisions resolve to at most one winner.
	DecideIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (view *BookingView, changed bool, err error)
	FindByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, now time.Time) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, now time.Time) ([]*BookingView, error)
	// FindLastApproved returns the APPROVED booking of the item with the
	// greatest start before now; nil when none exists.
	FindLastApproved(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	// FindNextApproved returns the APPROVED booking of the item with the
	// smallest start after now; nil when none exists.
	FindNextApproved(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	ExistsCompleted(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error)
}

// ItemRepository is the catalog.
type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) (*ItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	Update(ctx context.Context, i *item.Item) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemView, error)
}

// UserRepository is the party directory.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*UserView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, u *user.User) (*UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*UserView, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*CommentView, error)
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
}

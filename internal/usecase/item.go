package usecase

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotOwner           = errs.New("requester does not own the item")
	ErrRentalNotCompleted = errs.New("user never completed an eligible rental of this item")
)

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
}

type UpdateItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemUseCase interface {
	CreateItem(ctx context.Context, ownerID uuid.UUID, params CreateItemParams) (*ItemView, error)
	UpdateItem(ctx context.Context, requesterID, itemID uuid.UUID, patch UpdateItemParams) (*ItemView, error)
	GetItem(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error)
	Search(ctx context.Context, requesterID uuid.UUID, text string) ([]*ItemView, error)
	AddComment(ctx context.Context, requesterID, itemID uuid.UUID, text string) (*CommentView, error)
}

type itemUseCaseImpl struct {
	itemRepo    ItemRepository
	userRepo    UserRepository
	commentRepo CommentRepository
	eligibility EligibilityChecker
	clock       clock.Clock
}

func NewItemUseCase(
	itemRepo ItemRepository,
	userRepo UserRepository,
	commentRepo CommentRepository,
	eligibility EligibilityChecker,
	clock clock.Clock,
) ItemUseCase {
	return &itemUseCaseImpl{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		eligibility: eligibility,
		clock:       clock,
	}
}

func (u *itemUseCaseImpl) CreateItem(ctx context.Context, ownerID uuid.UUID, params CreateItemParams) (*ItemView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	itm, err := item.NewItem(ownerID, params.Name, params.Description, params.Available)
	if err != nil {
		return nil, err
	}

	return u.itemRepo.Create(ctx, itm)
}

func (u *itemUseCaseImpl) UpdateItem(ctx context.Context, requesterID, itemID uuid.UUID, patch UpdateItemParams) (*ItemView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	itm, err := u.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if !itm.IsOwnedBy(requesterID) {
		return nil, ErrNotOwner
	}

	if err := itm.Patch(patch.Name, patch.Description, patch.Available); err != nil {
		return nil, err
	}

	return u.itemRepo.Update(ctx, itm)
}

// GetItem always includes comments; last/next booking annotations are only
// computed for the item's owner.
func (u *itemUseCaseImpl) GetItem(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemDetailView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	itm, err := u.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	detail := &ItemDetailView{
		ItemView: ItemView{
			ID:          itm.ID(),
			OwnerID:     itm.OwnerID(),
			Name:        itm.Name(),
			Description: itm.Description(),
			Available:   itm.Available(),
		},
	}

	detail.Comments, err = u.commentRepo.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if itm.IsOwnedBy(requesterID) {
		detail.LastBooking, detail.NextBooking, err = u.eligibility.NearestBookings(ctx, itemID)
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func (u *itemUseCaseImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	views, err := u.itemRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details := make([]*ItemDetailView, len(views))
	for i, v := range views {
		detail := &ItemDetailView{ItemView: *v}

		detail.Comments, err = u.commentRepo.FindByItem(ctx, v.ID)
		if err != nil {
			return nil, err
		}

		detail.LastBooking, detail.NextBooking, err = u.eligibility.NearestBookings(ctx, v.ID)
		if err != nil {
			return nil, err
		}

		details[i] = detail
	}

	return details, nil
}

// Search matches available items by name or description; blank text returns
// an empty list without touching the catalog.
func (u *itemUseCaseImpl) Search(ctx context.Context, requesterID uuid.UUID, text string) ([]*ItemView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if text == "" {
		return []*ItemView{}, nil
	}

	return u.itemRepo.SearchAvailable(ctx, text)
}

// AddComment is gated by the eligibility check: the author must have an
// approved rental of the item that has already ended.
func (u *itemUseCaseImpl) AddComment(ctx context.Context, requesterID, itemID uuid.UUID, text string) (*CommentView, error) {
	exists, err := u.userRepo.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	eligible, err := u.eligibility.HasCompletedRental(ctx, requesterID, itemID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrRentalNotCompleted
	}

	c, err := comment.NewComment(u.clock.Now(), itemID, requesterID, text)
	if err != nil {
		return nil, err
	}

	return u.commentRepo.Create(ctx, c)
}

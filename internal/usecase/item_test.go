//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase"
	"shareit/tests/common/builder"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	itemRepo    *usecasemock.MockItemRepository
	userRepo    *usecasemock.MockUserRepository
	commentRepo *usecasemock.MockCommentRepository
	eligibility *usecasemock.MockEligibilityChecker
	clock       *clock.MockClock
	uc          usecase.ItemUseCase

	now time.Time
}

func (s *ItemUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.itemRepo = usecasemock.NewMockItemRepository(s.mockCtrl)
	s.userRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.commentRepo = usecasemock.NewMockCommentRepository(s.mockCtrl)
	s.eligibility = usecasemock.NewMockEligibilityChecker(s.mockCtrl)
	s.now = time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.uc = usecase.NewItemUseCase(s.itemRepo, s.userRepo, s.commentRepo, s.eligibility, s.clock)
}

func (s *ItemUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ItemUseCaseTestSuite))
}

func (s *ItemUseCaseTestSuite) TestCreateItem() {
	ctx := context.Background()

	s.Run("creates an item for an existing owner", func() {
		b := builder.NewItemBuilder()
		want := b.BuildView()

		s.userRepo.EXPECT().ExistsByID(ctx, b.OwnerID).Return(true, nil)
		s.itemRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, created *item.Item) (*usecase.ItemView, error) {
				s.Equal(b.OwnerID, created.OwnerID())
				s.Equal(b.Name, created.Name())
				return want, nil
			})

		got, err := s.uc.CreateItem(ctx, b.OwnerID, usecase.CreateItemParams{Name: b.Name, Description: b.Description, Available: b.Available})
		s.NoError(err)
		s.Equal(want, got)
	})

	s.Run("unknown owner", func() {
		b := builder.NewItemBuilder()
		s.userRepo.EXPECT().ExistsByID(ctx, b.OwnerID).Return(false, nil)

		_, err := s.uc.CreateItem(ctx, b.OwnerID, usecase.CreateItemParams{Name: b.Name, Description: b.Description, Available: b.Available})
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("blank name", func() {
		ownerID := uuid.New()
		s.userRepo.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)

		_, err := s.uc.CreateItem(ctx, ownerID, usecase.CreateItemParams{Name: " ", Description: "desc", Available: true})
		s.ErrorIs(err, item.ErrEmptyName)
	})
}

func (s *ItemUseCaseTestSuite) TestUpdateItem() {
	ctx := context.Background()
	ptr := func(v string) *string { return &v }
	boolPtr := func(v bool) *bool { return &v }

	s.Run("owner patches availability only", func() {
		b := builder.NewItemBuilder()
		itemID := uuid.New()
		stored := item.ReconstructItem(itemID, b.OwnerID, b.Name, b.Description, true)

		s.userRepo.EXPECT().ExistsByID(ctx, b.OwnerID).Return(true, nil)
		s.itemRepo.EXPECT().FindByID(ctx, itemID).Return(stored, nil)
		s.itemRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, patched *item.Item) (*usecase.ItemView, error) {
				s.Equal(b.Name, patched.Name())
				s.False(patched.Available())
				return &usecase.ItemView{ID: itemID, OwnerID: b.OwnerID, Name: b.Name, Description: b.Description, Available: false}, nil
			})

		got, err := s.uc.UpdateItem(ctx, b.OwnerID, itemID, usecase.UpdateItemParams{Available: boolPtr(false)})
		s.NoError(err)
		s.False(got.Available)
	})

	s.Run("non-owner cannot patch", func() {
		b := builder.NewItemBuilder()
		itemID := uuid.New()
		strangerID := uuid.New()
		stored := item.ReconstructItem(itemID, b.OwnerID, b.Name, b.Description, true)

		s.userRepo.EXPECT().ExistsByID(ctx, strangerID).Return(true, nil)
		s.itemRepo.EXPECT().FindByID(ctx, itemID).Return(stored, nil)

		_, err := s.uc.UpdateItem(ctx, strangerID, itemID, usecase.UpdateItemParams{Name: ptr("Stolen")})
		s.ErrorIs(err, usecase.ErrNotOwner)
	})

	s.Run("unknown item", func() {
		requesterID := uuid.New()
		itemID := uuid.New()

		s.userRepo.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)
		s.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, notFoundErr())

		_, err := s.uc.UpdateItem(ctx, requesterID, itemID, usecase.UpdateItemParams{})
		s.ErrorIs(err, usecase.ErrItemNotFound)
	})
}

func (s *ItemUseCaseTestSuite) TestGetItem() {
	ctx := context.Background()

	s.Run("owner sees booking annotations", func() {
		b := builder.NewItemBuilder()
		itemID := uuid.New()
		stored := item.ReconstructItem(itemID, b.OwnerID, b.Name, b.Description, true)
		last := &usecase.BookingRef{ID: uuid.New(), BookerID: uuid.New()}
		next := &usecase.BookingRef{ID: uuid.New(), BookerID: uuid.New()}
		comments := []*usecase.CommentView{{ID: uuid.New(), Text: "solid", AuthorName: "Past Renter", Created: s.now}}

		s.userRepo.EXPECT().ExistsByID(ctx, b.OwnerID).Return(true, nil)
		s.itemRepo.EXPECT().FindByID(ctx, itemID).Return(stored, nil)
		s.commentRepo.EXPECT().FindByItem(ctx, itemID).Return(comments, nil)
		s.eligibility.EXPECT().NearestBookings(ctx, itemID).Return(last, next, nil)

		got, err := s.uc.GetItem(ctx, b.OwnerID, itemID)
		s.NoError(err)
		s.Equal(last, got.LastBooking)
		s.Equal(next, got.NextBooking)
		s.Equal(comments, got.Comments)
	})

	s.Run("non-owner sees comments but no annotations", func() {
		b := builder.NewItemBuilder()
		itemID := uuid.New()
		strangerID := uuid.New()
		stored := item.ReconstructItem(itemID, b.OwnerID, b.Name, b.Description, true)

		s.userRepo.EXPECT().ExistsByID(ctx, strangerID).Return(true, nil)
		s.itemRepo.EXPECT().FindByID(ctx, itemID).Return(stored, nil)
		s.commentRepo.EXPECT().FindByItem(ctx, itemID).Return([]*usecase.CommentView{}, nil)

		got, err := s.uc.GetItem(ctx, strangerID, itemID)
		s.NoError(err)
		s.Nil(got.LastBooking)
		s.Nil(got.NextBooking)
	})
}

func (s *ItemUseCaseTestSuite) TestListByOwner() {
	ctx := context.Background()

	s.Run("annotates every item", func() {
		ownerID := uuid.New()
		views := []*usecase.ItemView{
			{ID: uuid.New(), OwnerID: ownerID, Name: "Drill", Description: "d", Available: true},
			{ID: uuid.New(), OwnerID: ownerID, Name: "Ladder", Description: "l", Available: false},
		}
		last := &usecase.BookingRef{ID: uuid.New(), BookerID: uuid.New()}

		s.userRepo.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)
		s.itemRepo.EXPECT().FindByOwner(ctx, ownerID).Return(views, nil)
		s.commentRepo.EXPECT().FindByItem(ctx, views[0].ID).Return(nil, nil)
		s.eligibility.EXPECT().NearestBookings(ctx, views[0].ID).Return(last, nil, nil)
		s.commentRepo.EXPECT().FindByItem(ctx, views[1].ID).Return(nil, nil)
		s.eligibility.EXPECT().NearestBookings(ctx, views[1].ID).Return(nil, nil, nil)

		got, err := s.uc.ListByOwner(ctx, ownerID)
		s.NoError(err)
		s.Len(got, 2)
		s.Equal(last, got[0].LastBooking)
		s.Nil(got[1].LastBooking)
	})
}

func (s *ItemUseCaseTestSuite) TestSearch() {
	ctx := context.Background()
	requesterID := uuid.New()

	s.Run("blank text short-circuits to an empty list", func() {
		s.userRepo.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)

		got, err := s.uc.Search(ctx, requesterID, "")
		s.NoError(err)
		s.Empty(got)
	})

	s.Run("delegates to the catalog", func() {
		views := []*usecase.ItemView{builder.NewItemBuilder().BuildView()}
		s.userRepo.EXPECT().ExistsByID(ctx, requesterID).Return(true, nil)
		s.itemRepo.EXPECT().SearchAvailable(ctx, "drill").Return(views, nil)

		got, err := s.uc.Search(ctx, requesterID, "drill")
		s.NoError(err)
		s.Equal(views, got)
	})
}

func (s *ItemUseCaseTestSuite) TestAddComment() {
	ctx := context.Background()

	s.Run("eligible renter comments", func() {
		b := builder.NewItemBuilder()
		itemID := uuid.New()
		authorID := uuid.New()
		stored := item.ReconstructItem(itemID, b.OwnerID, b.Name, b.Description, true)
		want := &usecase.CommentView{ID: uuid.New(), Text: "great drill", AuthorName: "Renter", Created: s.now}

		s.userRepo.EXPECT().ExistsByID(ctx, authorID).Return(true, nil)
		s.itemRepo.EXPECT().FindByID(ctx, itemID).Return(stored, nil)
		s.eligibility.EXPECT().HasCompletedRental(ctx, authorID, itemID).Return(true, nil)
		s.commentRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *comment.Comment) (*usecase.CommentView, error) {
				s.Equal("great drill", c.Text())
				s.Equal(s.now, c.CreatedAt())
				return want, nil
			})

		got, err := s.uc.AddComment(ctx, authorID, itemID, "great drill")
		s.NoError(err)
		s.Equal(want, got)
	})

	s.Run("no completed rental", func() {
		b := builder.NewItemBuilder()
		itemID := uuid.New()
		authorID := uuid.New()
		stored := item.ReconstructItem(itemID, b.OwnerID, b.Name, b.Description, true)

		s.userRepo.EXPECT().ExistsByID(ctx, authorID).Return(true, nil)
		s.itemRepo.EXPECT().FindByID(ctx, itemID).Return(stored, nil)
		s.eligibility.EXPECT().HasCompletedRental(ctx, authorID, itemID).Return(false, nil)

		_, err := s.uc.AddComment(ctx, authorID, itemID, "never rented this")
		s.ErrorIs(err, usecase.ErrRentalNotCompleted)
	})

	s.Run("blank text fails after the gate", func() {
		b := builder.NewItemBuilder()
		itemID := uuid.New()
		authorID := uuid.New()
		stored := item.ReconstructItem(itemID, b.OwnerID, b.Name, b.Description, true)

		s.userRepo.EXPECT().ExistsByID(ctx, authorID).Return(true, nil)
		s.itemRepo.EXPECT().FindByID(ctx, itemID).Return(stored, nil)
		s.eligibility.EXPECT().HasCompletedRental(ctx, authorID, itemID).Return(true, nil)

		_, err := s.uc.AddComment(ctx, authorID, itemID, "  ")
		s.ErrorIs(err, comment.ErrEmptyText)
	})
}

//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/pkg/clock"
	"shareit/internal/usecase"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EligibilityTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	bookingRepo *usecasemock.MockBookingRepository
	clock       *clock.MockClock
	checker     usecase.EligibilityChecker

	now time.Time
}

func (s *EligibilityTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.now = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.checker = usecase.NewEligibilityChecker(s.bookingRepo, s.clock)
}

func (s *EligibilityTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEligibilitySuite(t *testing.T) {
	suite.Run(t, new(EligibilityTestSuite))
}

func (s *EligibilityTestSuite) TestHasCompletedRental() {
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	s.Run("completed rental found", func() {
		s.bookingRepo.EXPECT().ExistsCompleted(ctx, userID, itemID, s.now).Return(true, nil)

		ok, err := s.checker.HasCompletedRental(ctx, userID, itemID)
		s.NoError(err)
		s.True(ok)
	})

	s.Run("rental still running does not qualify", func() {
		s.bookingRepo.EXPECT().ExistsCompleted(ctx, userID, itemID, s.now).Return(false, nil)

		ok, err := s.checker.HasCompletedRental(ctx, userID, itemID)
		s.NoError(err)
		s.False(ok)
	})

	s.Run("advancing the clock changes the answer", func() {
		s.clock.Add(48 * time.Hour)
		later := s.now.Add(48 * time.Hour)
		s.bookingRepo.EXPECT().ExistsCompleted(ctx, userID, itemID, later).Return(true, nil)

		ok, err := s.checker.HasCompletedRental(ctx, userID, itemID)
		s.NoError(err)
		s.True(ok)
	})
}

func (s *EligibilityTestSuite) TestNearestBookings() {
	ctx := context.Background()
	itemID := uuid.New()

	s.Run("both annotations present", func() {
		last := &usecase.BookingRef{ID: uuid.New(), BookerID: uuid.New()}
		next := &usecase.BookingRef{ID: uuid.New(), BookerID: uuid.New()}

		s.bookingRepo.EXPECT().FindLastApproved(ctx, itemID, s.now).Return(last, nil)
		s.bookingRepo.EXPECT().FindNextApproved(ctx, itemID, s.now).Return(next, nil)

		gotLast, gotNext, err := s.checker.NearestBookings(ctx, itemID)
		s.NoError(err)
		s.Equal(last, gotLast)
		s.Equal(next, gotNext)
	})

	s.Run("no approved bookings yields nils, not an error", func() {
		s.bookingRepo.EXPECT().FindLastApproved(ctx, itemID, s.now).Return(nil, nil)
		s.bookingRepo.EXPECT().FindNextApproved(ctx, itemID, s.now).Return(nil, nil)

		gotLast, gotNext, err := s.checker.NearestBookings(ctx, itemID)
		s.NoError(err)
		s.Nil(gotLast)
		s.Nil(gotNext)
	})

	s.Run("store failure is passed through", func() {
		s.bookingRepo.EXPECT().FindLastApproved(ctx, itemID, s.now).Return(nil, errStoreDown)

		_, _, err := s.checker.NearestBookings(ctx, itemID)
		s.ErrorIs(err, errStoreDown)
	})
}

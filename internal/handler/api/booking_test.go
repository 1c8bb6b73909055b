//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)

	s.router.Use(middleware.ErrorHandler())
	bookings := s.router.Group("/bookings")
	bookings.Use(middleware.RequireSharerID())
	bookings.POST("", s.handler.Create)
	bookings.GET("", s.handler.ListByBooker)
	bookings.GET("/owner", s.handler.ListByOwner)
	bookings.GET("/:bookingId", s.handler.Get)
	bookings.PATCH("/:bookingId", s.handler.ApproveOrReject)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("201 on success", func() {
		b := builder.NewBookingBuilder()
		view := b.BuildView()

		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), b.BookerID, gomock.Any()).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", b.BuildCreateRequestDTO(), b.BookerID.String())

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("WAITING", got.Status)
		s.Equal(view.Item.Name, got.Item.Name)
	})

	s.Run("400 without identity header", func() {
		b := builder.NewBookingBuilder()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("400 with malformed identity header", func() {
		b := builder.NewBookingBuilder()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", b.BuildCreateRequestDTO(), "42")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("404 for unavailable preconditions reported as not found", func() {
		b := builder.NewBookingBuilder()
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), b.BookerID, gomock.Any()).Return(nil, usecase.ErrOwnItemRental)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", b.BuildCreateRequestDTO(), b.BookerID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "cannot rent own item")
	})

	s.Run("400 for validation failures", func() {
		b := builder.NewBookingBuilder()
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), b.BookerID, gomock.Any()).Return(nil, usecase.ErrItemUnavailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", b.BuildCreateRequestDTO(), b.BookerID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "not available")
	})
}

func (s *BookingHandlerTestSuite) TestApproveOrReject() {
	s.Run("200 with resolved booking", func() {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = "APPROVED" })
		view := b.BuildView()

		s.mockUseCase.EXPECT().ApproveOrReject(gomock.Any(), b.OwnerID, view.ID, true).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+view.ID.String()+"?approved=true", nil, b.OwnerID.String())

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("APPROVED", got.Status)
	})

	s.Run("400 without approved parameter", func() {
		requesterID := uuid.New()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+uuid.NewString(), nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "approved")
	})

	s.Run("400 on a repeated decision", func() {
		requesterID := uuid.New()
		bookingID := uuid.New()
		s.mockUseCase.EXPECT().ApproveOrReject(gomock.Any(), requesterID, bookingID, false).Return(nil, booking.ErrNotAwaitingApproval)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+bookingID.String()+"?approved=false", nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "not awaiting approval")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("404 for a stranger", func() {
		requesterID := uuid.New()
		bookingID := uuid.New()
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), requesterID, bookingID).Return(nil, usecase.ErrNotBookerNorOwner)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "neither booker nor owner")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	makeViews := func(n int) []*usecase.BookingView {
		views := make([]*usecase.BookingView, n)
		for i := range views {
			views[i] = builder.NewBookingBuilder().BuildView()
		}
		return views
	}

	s.Run("slices the full result set with from and size", func() {
		requesterID := uuid.New()
		views := makeViews(5)

		s.mockUseCase.EXPECT().ListByBooker(gomock.Any(), requesterID, "ALL").Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=1&size=2", nil, requesterID.String())

		var got []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got, 2)
		s.Equal(views[1].ID, got[0].ID)
		s.Equal(views[2].ID, got[1].ID)
	})

	s.Run("from beyond the end yields an empty page", func() {
		requesterID := uuid.New()
		s.mockUseCase.EXPECT().ListByOwner(gomock.Any(), requesterID, "ALL").Return(makeViews(2), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?from=10", nil, requesterID.String())

		var got []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Empty(got)
	})

	s.Run("400 for negative from", func() {
		requesterID := uuid.New()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=-1", nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "from")
	})

	s.Run("400 for non-positive size", func() {
		requesterID := uuid.New()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?size=0", nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "size")
	})

	s.Run("400 for an unknown state", func() {
		requesterID := uuid.New()
		s.mockUseCase.EXPECT().ListByBooker(gomock.Any(), requesterID, "SOMETHING").Return(nil, booking.ErrUnknownState)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=SOMETHING", nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "unknown state")
	})
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Request a rental of an item for a future period
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingUseCase.CreateBooking(c.Request.Context(), requesterID, req.ToParams())
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Item owner resolves a waiting booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester user ID"
// @Param bookingId path string true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) ApproveOrReject(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter 'approved' must be true or false", nil)
		return
	}

	view, err := h.bookingUseCase.ApproveOrReject(c.Request.Context(), requesterID, bookingID, approved)
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking, visible to its booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester user ID"
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingUseCase.GetBooking(c.Request.Context(), requesterID, bookingID)
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings by booker
// @Description List the requester's bookings filtered by state, newest first
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset into the result set" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, h.bookingUseCase.ListByBooker)
}

// @Summary List bookings by owner
// @Description List bookings of all items the requester owns, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset into the result set" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, h.bookingUseCase.ListByOwner)
}

func (h *BookingHandler) list(c *gin.Context, query listBookingsFunc) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := query(c.Request.Context(), requesterID, c.DefaultQuery("state", "ALL"))
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(pageSlice(page, views)))
}

func (h *BookingHandler) mapBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRenterNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrItemNotFound),
		errors.Is(err, usecase.ErrOwnItemRental),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrNotItemOwner),
		errors.Is(err, usecase.ErrNotBookerNorOwner):
		httperr.NotFound(c, err)
	case errors.Is(err, usecase.ErrItemUnavailable),
		errors.Is(err, booking.ErrInvalidRentalPeriod),
		errors.Is(err, booking.ErrNotAwaitingApproval),
		errors.Is(err, booking.ErrUnknownState):
		httperr.BadRequest(c, err)
	default:
		httperr.Internal(c, err)
	}
}

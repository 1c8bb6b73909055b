package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemUseCase usecase.ItemUseCase
}

func NewItemHandler(itemUseCase usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

// @Summary Create item
// @Description Register an item owned by the requester
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param request body reqdto.CreateItemRequest true "Item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.itemUseCase.CreateItem(c.Request.Context(), ownerID, req.ToParams())
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Patch name, description or availability; owner only
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester user ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to patch"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.itemUseCase.UpdateItem(c.Request.Context(), requesterID, itemID, req.ToParams())
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Get an item with comments; booking annotations are owner-only
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester user ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	view, err := h.itemUseCase.GetItem(c.Request.Context(), requesterID, itemID)
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

// @Summary List own items
// @Description List the requester's items with booking annotations
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param from query int false "Page offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.itemUseCase.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailViews(pageSlice(page, views)))
}

// @Summary Search items
// @Description Case-insensitive substring search over available items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester user ID"
// @Param text query string true "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	views, err := h.itemUseCase.Search(c.Request.Context(), requesterID, c.Query("text"))
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Add comment
// @Description Leave a comment on an item after a completed rental
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Author user ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment text"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.itemUseCase.AddComment(c.Request.Context(), requesterID, itemID, req.Text)
	if err != nil {
		h.mapItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}

func (h *ItemHandler) mapItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrItemNotFound),
		errors.Is(err, usecase.ErrNotOwner):
		httperr.NotFound(c, err)
	case errors.Is(err, usecase.ErrRentalNotCompleted),
		errors.Is(err, item.ErrEmptyName),
		errors.Is(err, item.ErrEmptyDescription),
		errors.Is(err, comment.ErrEmptyText),
		errors.Is(err, comment.ErrTextTooLong):
		httperr.BadRequest(c, err)
	default:
		httperr.Internal(c, err)
	}
}

package api

import (
	"context"
	"errors"
	"strconv"

	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Should never fire behind RequireSharerID; kept for routes wired without it.
var errMissingIdentity = errors.New("requester identity missing from context")

type listBookingsFunc func(ctx context.Context, requesterID uuid.UUID, state string) ([]*usecase.BookingView, error)

const (
	defaultPageFrom = 0
	defaultPageSize = 10
)

// pagination is a presentation concern: usecases return full result sets
// and handlers slice them.
type page struct {
	from int
	size int
}

func parsePage(c *gin.Context) (page, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", strconv.Itoa(defaultPageFrom)))
	if err != nil || from < 0 {
		return page{}, errors.New("query parameter 'from' must be a non-negative integer")
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size <= 0 {
		return page{}, errors.New("query parameter 'size' must be a positive integer")
	}

	return page{from: from, size: size}, nil
}

func pageSlice[T any](p page, views []T) []T {
	if p.from >= len(views) {
		return []T{}
	}
	end := p.from + p.size
	if end > len(views) {
		end = len(views)
	}
	return views[p.from:end]
}

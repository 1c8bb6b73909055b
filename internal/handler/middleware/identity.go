package middleware

import (
	"errors"
	"net/http"

	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity is carried by the X-Sharer-User-Id header. The handler layer only
// checks the header is a well-formed id; existence checks belong to usecases.
const SharerUserIDHeader = "X-Sharer-User-Id"

const ctxSharerIDKey = "sharer_user_id"

var errMissingSharerID = errors.New("missing X-Sharer-User-Id header")

func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerUserIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharerID, errMissingSharerID.Error(), nil)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid X-Sharer-User-Id header", nil)
			return
		}

		c.Set(ctxSharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSharerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

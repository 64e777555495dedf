// Package handler holds the HTTP boundary: request binding, validation,
// error-to-status mapping and response envelopes.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/middleware"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user or writes a 401.
func currentUser(c *gin.Context) (*models.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return nil, false
	}
	return user, true
}

// fail maps a store or domain error to the response taxonomy. Internal
// causes go to the log, never into the response body.
func fail(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, what+" not found")
	case errors.Is(err, models.ErrInvalidGoalState):
		util.Error(c, http.StatusUnprocessableEntity, util.CodeGoalState, "budget goal target amount must be positive")
	default:
		slog.Error("request failed", "what", what, "error", err, "path", c.FullPath())
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}

// queryInt reads an integer query parameter, falling back on absence or
// garbage.
func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// pageParams reads page/limit with the usual defaults and caps.
func pageParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page = queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit = queryInt(c, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// totalPages computes the page count for a total at a given limit.
func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"go-postgres-optics/service"
	"go-postgres-optics/utils"

	"github.com/gin-gonic/gin"
)

// nowFn is swapped out in tests that need a fixed date.
var nowFn = time.Now

const dateLayout = "2006-01-02"

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseDate reads a yyyy-mm-dd form date; empty input falls back to today,
// truncated to the date so stored values never carry a time of day.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		y, m, d := nowFn().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, s)
}

// respondDBError maps a classified persistence error onto the right status:
// 409 duplicate, 503 connection, 500 anything else.
func respondDBError(c *gin.Context, message string, err error) {
	err = service.WrapDBError(err)
	switch {
	case errors.Is(err, service.ErrDuplicateEntry):
		utils.Error(c, http.StatusConflict, "Duplicate or invalid entry", err)
	case errors.Is(err, service.ErrConnection):
		utils.Error(c, http.StatusServiceUnavailable, "Could not connect to the database", err)
	default:
		utils.Error(c, http.StatusInternalServerError, message, err)
	}
}

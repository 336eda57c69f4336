package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/httperr"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/store"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		httperr.NotFound(c, "not_found")
		return 0, false
	}
	return uint(id), true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseTimeOfDay validates a 24-hour HH:MM string and returns it in
// normalized form.
func parseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(timeLayout), nil
}

// writeStoreError maps storage failures onto the response taxonomy:
// validation problems become a 400 naming the offending field, missing rows
// become a 404 with the caller's code, anything else is logged and hidden
// behind a generic 500.
func writeStoreError(c *gin.Context, err error, notFoundCode string) {
	if ve, ok := store.AsValidation(err); ok {
		httperr.BadRequest(c, "validation_error", fmt.Sprintf("%s: %s", ve.Field, ve.Message))
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		httperr.NotFound(c, notFoundCode)
		return
	}
	log.Printf("storage error: %v", err)
	httperr.Internal(c, "internal_error", "")
}

package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shekinah-storefront/internal/catalog"
	"shekinah-storefront/internal/configurator"
	"shekinah-storefront/internal/session"
)

// jsonError writes an error response as JSON with the mapped status code.
func jsonError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, catalog.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, configurator.ErrSplitIncomplete):
		// Confirmation is blocked, not broken; the client renders this as a
		// disabled action.
		return http.StatusUnprocessableEntity
	case errors.Is(err, configurator.ErrUnknownSize), errors.Is(err, configurator.ErrUnknownAddOn):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrBadTransition),
		errors.Is(err, session.ErrEmptyCart),
		errors.Is(err, session.ErrLocationPending),
		errors.Is(err, session.ErrStaleLocation):
		return http.StatusConflict
	case errors.Is(err, session.ErrLocationTimeout):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

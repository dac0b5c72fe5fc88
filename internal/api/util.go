package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/logging"
	"github.com/ogrande/tower-cards/internal/service"
	"github.com/ogrande/tower-cards/internal/storage"
)

// playerID extracts and validates the player path parameter. Writes the
// error response itself and returns false when missing.
func playerID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("playerID"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerIDMissing})
		return "", false
	}
	return id, true
}

// respondError maps the service error taxonomy onto HTTP statuses:
// validation -> 400, cooldown -> 429 with remaining time, persistence ->
// 500, anything else -> 500.
func respondError(c *gin.Context, err error) {
	var cooldown *service.CooldownError
	if errors.As(err, &cooldown) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			constants.JSONKeyError:     cooldown.Error(),
			constants.JSONKeyRemaining: cooldown.Remaining.Seconds(),
		})
		return
	}
	if service.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	var persist *storage.PersistError
	if errors.As(err, &persist) {
		logging.Error("persist failed while handling command", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	logging.Error("unexpected command failure", err, nil)
	c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
}

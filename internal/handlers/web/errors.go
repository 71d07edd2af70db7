package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/KirkDiggler/ohhell/internal/ledger"
	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/gin-gonic/gin"
)

const noActiveGame = "No active game"

// respondError writes err with the status its kind maps to
func respondError(c *gin.Context, err error) {
	var ruleErr ledger.RuleError
	switch {
	case errors.As(err, &ruleErr), errors.Is(err, game.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, game.ErrGameNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: noActiveGame})
	case errors.Is(err, game.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

package http

import (
	"net/http"

	"gamma/internal/room"

	"github.com/gin-gonic/gin"
)

// GetWeightsHandler returns the weights bots use when scoring moves.
func GetWeightsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"weights": rm.Weights()})
	}
}

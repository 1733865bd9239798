package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glamora/booking-api/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	value, _ := c.Get(middleware.ContextUserID)
	id, _ := value.(uint)
	return id
}

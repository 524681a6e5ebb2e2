package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/stats/admin
func (h *Handlers) GetAdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats(c).Admin(c.Request.Context()))
}

// GET /api/stats/operator
func (h *Handlers) GetOperatorStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats(c).Operator())
}

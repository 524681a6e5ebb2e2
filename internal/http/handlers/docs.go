package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smarttoll/internal/domain"
)

// GET /api/passes/:id/receipt
func (h *Handlers) GetPassReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	pdf, filename, derr := h.docs(c).GenerateReceipt(domain.ID(id))
	if derr != nil {
		RespondDomainError(c, derr)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

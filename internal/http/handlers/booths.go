package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
)

// GET /api/booths
func (h *Handlers) GetBooths(c *gin.Context) {
	c.JSON(http.StatusOK, h.booths(c).List())
}

// POST /api/booths
func (h *Handlers) CreateBooth(c *gin.Context) {
	var form models.BoothForm
	if !BindJSONOrError(c, &form) {
		return
	}
	booth, err := h.booths(c).Add(form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.stats(c).Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, booth)
}

// PUT /api/booths/:id
func (h *Handlers) UpdateBooth(c *gin.Context) {
	id, ok := boothID(c)
	if !ok {
		return
	}
	var form models.BoothForm
	if !BindJSONOrError(c, &form) {
		return
	}
	booth, err := h.booths(c).Update(id, form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booth)
}

// DELETE /api/booths/:id
func (h *Handlers) DeleteBooth(c *gin.Context) {
	id, ok := boothID(c)
	if !ok {
		return
	}
	if err := h.booths(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.stats(c).Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "booth removed"})
}

func boothID(c *gin.Context) (domain.ID, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return domain.ID(id), true
}

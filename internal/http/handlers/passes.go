package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smarttoll/internal/domain"
	"smarttoll/internal/sim"
)

type detectPayload struct {
	VehicleNumber string  `json:"vehicleNumber" binding:"required"`
	Lane          int     `json:"lane" binding:"required"`
	Amount        float64 `json:"amount"`
}

// GET /api/passes
func (h *Handlers) GetPasses(c *gin.Context) {
	c.JSON(http.StatusOK, h.tolls(c).List())
}

// POST /api/passes
// Registers a detection and hands it to billing after the simulated RFID
// handoff delay, like the real lane would.
func (h *Handlers) DetectVehicle(c *gin.Context) {
	var payload detectPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	svc := h.tolls(c)
	pass, err := svc.Detect(payload.VehicleNumber, payload.Lane, payload.Amount)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	id := pass.ID
	sim.After(h.DetectDelay, func() {
		_, _ = svc.BeginProcessing(id)
	})
	c.JSON(http.StatusCreated, pass)
}

// POST /api/passes/:id/advance
// Manual settle for one in-flight pass, same policy as the driver tick.
func (h *Handlers) AdvancePass(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	pass, serr := h.tolls(c).Settle(domain.ID(id), h.Decide)
	if serr != nil {
		RespondDomainError(c, serr)
		return
	}
	h.stats(c).Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, pass)
}

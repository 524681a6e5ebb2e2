package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttoll/internal/http/middleware"
)

type rechargePayload struct {
	Amount float64 `json:"amount"`
}

type payTollPayload struct {
	Amount float64 `json:"amount"`
	Booth  string  `json:"booth" binding:"required"`
}

// GET /api/wallet
func (h *Handlers) GetWallet(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, h.Wallets.Snapshot(sess.UserID))
}

// POST /api/wallet/recharge
func (h *Handlers) Recharge(c *gin.Context) {
	var payload rechargePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	sess := middleware.SessionFrom(c)
	wallet, err := h.Wallets.Recharge(sess.UserID, payload.Amount)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// POST /api/wallet/pay
func (h *Handlers) PayToll(c *gin.Context) {
	var payload payTollPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	sess := middleware.SessionFrom(c)
	wallet, err := h.Wallets.PayToll(sess.UserID, payload.Amount, payload.Booth)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// GET /api/wallet/statement
func (h *Handlers) GetWalletStatement(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	pdf, filename, err := h.docs(c).GenerateStatement(sess.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

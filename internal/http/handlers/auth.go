package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttoll/internal/http/middleware"
	"smarttoll/internal/services"
	"smarttoll/internal/utils"
)

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type verifyOTPPayload struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// POST /api/auth/register
func (h *Handlers) Register(c *gin.Context) {
	var form services.RegisterForm
	if !BindJSONOrError(c, &form) {
		return
	}
	if err := h.Auth.Register(form); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "OTP sent to your email and phone"})
}

// POST /api/auth/verify-otp
func (h *Handlers) VerifyOTP(c *gin.Context) {
	var payload verifyOTPPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	acc, err := h.Auth.VerifyOTP(payload.Email, payload.OTP)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user": acc})
}

// POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var payload loginPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	sess, token, err := h.Auth.Login(payload.Email, payload.Password)
	if err != nil {
		// credential failures come back as validation errors; report 401
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
		return
	}
	acc, _ := h.Auth.Account(sess.Email)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": acc, "session": sess})
}

// POST /api/auth/logout
// Tokens are stateless; the session dies when the client discards the token.
func (h *Handlers) Logout(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	utils.LogEvent(middleware.GetRequestID(c), "auth", "logout", "session closed for "+sess.Email)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

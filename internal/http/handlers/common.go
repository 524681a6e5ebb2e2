package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smarttoll/internal/cache"
	"smarttoll/internal/http/middleware"
	"smarttoll/internal/services"
	"smarttoll/internal/store"
)

// Handlers is the presentation adapter: it turns HTTP requests into domain
// commands and snapshots into view models. Services that hold no state are
// built per request so their log lines carry the request id.
type Handlers struct {
	Store       *store.Store
	Wallets     *services.WalletService
	Auth        *services.AuthService
	StatsCache  *cache.ViewCache[services.AdminStats]
	Decide      services.PaymentDecision
	DetectDelay time.Duration
}

func (h *Handlers) booths(c *gin.Context) services.BoothService {
	return services.BoothService{Store: h.Store, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) tolls(c *gin.Context) services.TollService {
	return services.TollService{Store: h.Store, RequestID: middleware.GetRequestID(c)}
}

func (h *Handlers) stats(c *gin.Context) services.StatsService {
	return services.StatsService{
		Store:      h.Store,
		Auth:       h.Auth,
		AdminCache: h.StatsCache,
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handlers) docs(c *gin.Context) services.DocsService {
	return services.DocsService{Store: h.Store, Wallets: h.Wallets, RequestID: middleware.GetRequestID(c)}
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

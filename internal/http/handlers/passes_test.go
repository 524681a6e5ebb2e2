package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
)

func passRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/passes", h.GetPasses)
	r.POST("/api/passes", h.DetectVehicle)
	r.POST("/api/passes/:id/advance", h.AdvancePass)
	return r
}

func TestDetectVehicleMovesToProcessing(t *testing.T) {
	h := newTestHandlers()
	h.DetectDelay = time.Millisecond
	r := passRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/passes", gin.H{"vehicleNumber": "ABC-1234", "lane": 3, "amount": 15.50})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var pass models.VehiclePass
	if err := json.Unmarshal(w.Body.Bytes(), &pass); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pass.Status != models.PassDetected {
		t.Fatalf("expected detected on response, got %s", pass.Status)
	}

	deadline := time.After(time.Second)
	for {
		got, _ := h.Store.GetPass(pass.ID)
		if got.Status == models.PassProcessing {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("pass never handed off to billing, status=%s", got.Status)
		case <-time.After(time.Millisecond):
		}
	}
}

func TestAdvancePassSettles(t *testing.T) {
	h := newTestHandlers()
	h.Decide = func(models.VehiclePass) domain.Status { return models.PassPaid }
	h.Store.UpsertPass(models.VehiclePass{ID: 1, VehicleNumber: "XYZ-5678", Status: models.PassProcessing, Amount: 15.50, Lane: 3})
	r := passRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/passes/1/advance", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var pass models.VehiclePass
	if err := json.Unmarshal(w.Body.Bytes(), &pass); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pass.Status != models.PassPaid {
		t.Fatalf("expected paid, got %s", pass.Status)
	}
}

func TestAdvancePassConflictsWhenTerminal(t *testing.T) {
	h := newTestHandlers()
	h.Decide = func(models.VehiclePass) domain.Status { return models.PassPaid }
	h.Store.UpsertPass(models.VehiclePass{ID: 1, VehicleNumber: "XYZ-5678", Status: models.PassFailed, Amount: 15.50, Lane: 3})
	r := passRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/passes/1/advance", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

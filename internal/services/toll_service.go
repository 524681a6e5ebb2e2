package services

import (
	"fmt"
	"math/rand"
	"strings"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/store"
	"smarttoll/internal/utils"
)

// PaymentDecision picks the terminal outcome for a pass that is still in
// processing when a tick fires. Injectable so tests can force either branch;
// production wiring uses RandomDecision.
type PaymentDecision func(models.VehiclePass) domain.Status

// RandomDecision returns the reference policy: paid with probability pPaid,
// failed otherwise, drawn from a seedable source.
func RandomDecision(src rand.Source, pPaid float64) PaymentDecision {
	rng := rand.New(src)
	return func(models.VehiclePass) domain.Status {
		if rng.Float64() < pPaid {
			return models.PassPaid
		}
		return models.PassFailed
	}
}

// TollService owns the vehicle-pass lifecycle for a lane session.
type TollService struct {
	Store     *store.Store
	RequestID string
}

// List returns the current pass snapshot.
func (s TollService) List() []models.VehiclePass {
	return s.Store.Passes()
}

// Detect records a sensed vehicle. Amount and lane are fixed here; the
// billing collaborator moves the pass onward later.
func (s TollService) Detect(vehicleNumber string, lane int, amount float64) (models.VehiclePass, error) {
	vehicleNumber = strings.TrimSpace(vehicleNumber)
	if vehicleNumber == "" {
		return models.VehiclePass{}, domain.ValidationError{Field: "vehicleNumber", Msg: "must not be empty"}
	}
	if lane < 1 {
		return models.VehiclePass{}, domain.ValidationError{Field: "lane", Msg: "must be at least 1"}
	}
	if amount < 0 {
		return models.VehiclePass{}, domain.ValidationError{Field: "amount", Msg: "must be non-negative"}
	}
	pass := models.VehiclePass{
		ID:            s.Store.NextPassID(),
		VehicleNumber: vehicleNumber,
		Status:        models.PassDetected,
		Amount:        amount,
		Timestamp:     utils.NowClock(),
		Lane:          lane,
	}
	s.Store.UpsertPass(pass)
	utils.LogEvent(s.RequestID, "toll", "detect", fmt.Sprintf("id=%d vehicle=%s lane=%d", pass.ID, vehicleNumber, lane))
	return pass, nil
}

// Transition moves one pass along the lifecycle. Terminal records are
// immutable; any attempt reports InvalidTransitionError and changes nothing.
func (s TollService) Transition(id domain.ID, to domain.Status) (models.VehiclePass, error) {
	var out models.VehiclePass
	err := s.Store.UpdatePass(id, func(p models.VehiclePass) (models.VehiclePass, error) {
		if !models.CanTransition(p.Status, to) {
			return p, domain.InvalidTransitionError{PassID: id, From: p.Status, To: to}
		}
		out = p.WithStatus(to)
		return out, nil
	})
	if err != nil {
		return models.VehiclePass{}, err
	}
	utils.LogEvent(s.RequestID, "toll", "transition", fmt.Sprintf("id=%d status=%s", id, to))
	return out, nil
}

// BeginProcessing hands a detected pass to billing.
func (s TollService) BeginProcessing(id domain.ID) (models.VehiclePass, error) {
	return s.Transition(id, models.PassProcessing)
}

// Settle applies the decision to one pass if it is still processing.
func (s TollService) Settle(id domain.ID, decide PaymentDecision) (models.VehiclePass, error) {
	var out models.VehiclePass
	err := s.Store.UpdatePass(id, func(p models.VehiclePass) (models.VehiclePass, error) {
		if p.Status != models.PassProcessing {
			return p, domain.InvalidTransitionError{PassID: id, From: p.Status, To: "terminal"}
		}
		out = p.WithStatus(decide(p))
		return out, nil
	})
	if err != nil {
		return models.VehiclePass{}, err
	}
	utils.LogEvent(s.RequestID, "toll", "settle", fmt.Sprintf("id=%d status=%s", id, out.Status))
	return out, nil
}

// AdvanceProcessing runs one driver tick: every pass currently in processing
// gets an independent terminal decision. Records already terminal, or moved
// concurrently by another command, are skipped. Returns how many settled.
func (s TollService) AdvanceProcessing(decide PaymentDecision) int {
	settled := 0
	for _, p := range s.Store.Passes() {
		if p.Status != models.PassProcessing {
			continue
		}
		if _, err := s.Settle(p.ID, decide); err == nil {
			settled++
		}
	}
	return settled
}

package models

import "smarttoll/internal/domain"

// Vehicle pass lifecycle. Strict forward machine:
// detected -> processing -> paid | failed. Terminal states never change.
const (
	PassDetected   domain.Status = "detected"
	PassProcessing domain.Status = "processing"
	PassPaid       domain.Status = "paid"
	PassFailed     domain.Status = "failed"
)

// VehiclePass is a single RFID transit event in a lane session.
// Amount, timestamp and lane are fixed at creation.
type VehiclePass struct {
	ID            domain.ID     `json:"id"`
	VehicleNumber string        `json:"vehicleNumber"`
	Status        domain.Status `json:"rfidStatus"`
	Amount        float64       `json:"amount"`
	Timestamp     string        `json:"timestamp"`
	Lane          int           `json:"lane"`
}

// Terminal reports whether s permits no further transitions.
func Terminal(s domain.Status) bool {
	return s == PassPaid || s == PassFailed
}

// CanTransition reports whether from -> to is a legal lifecycle step.
func CanTransition(from, to domain.Status) bool {
	switch from {
	case PassDetected:
		return to == PassProcessing
	case PassProcessing:
		return to == PassPaid || to == PassFailed
	}
	return false
}

// WithStatus returns a copy of the pass moved to status s. Callers must
// check CanTransition first; the store only ever swaps whole records.
func (p VehiclePass) WithStatus(s domain.Status) VehiclePass {
	p.Status = s
	return p
}

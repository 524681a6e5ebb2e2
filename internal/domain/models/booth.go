package models

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"smarttoll/internal/domain"
)

var validate = validator.New()

// TollBooth is an independent plaza record managed from the admin dashboard.
type TollBooth struct {
	ID       domain.ID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Lanes    int       `json:"lanes"`
	Operator string    `json:"operator"`
	Rate     float64   `json:"rate"`
}

// BoothForm carries the mutable booth fields from the admin form.
type BoothForm struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location" validate:"required"`
	Lanes    int     `json:"lanes" validate:"gte=1"`
	Operator string  `json:"operator" validate:"required"`
	Rate     float64 `json:"rate" validate:"gte=0"`
}

// Validate checks the struct tags plus what they cannot express
// (whitespace-only strings, non-finite rates).
func (f BoothForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return domain.ValidationError{Field: strings.ToLower(errs[0].Field()), Msg: "failed " + errs[0].Tag() + " check", Err: err}
		}
		return domain.ValidationError{Msg: "invalid booth form", Err: err}
	}
	if strings.TrimSpace(f.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if strings.TrimSpace(f.Location) == "" {
		return domain.ValidationError{Field: "location", Msg: "must not be empty"}
	}
	if strings.TrimSpace(f.Operator) == "" {
		return domain.ValidationError{Field: "operator", Msg: "must not be empty"}
	}
	if math.IsNaN(f.Rate) || math.IsInf(f.Rate, 0) {
		return domain.ValidationError{Field: "rate", Msg: "must be a finite amount"}
	}
	return nil
}

// Apply copies the form onto a booth record, preserving its id.
func (f BoothForm) Apply(id domain.ID) TollBooth {
	return TollBooth{
		ID:       id,
		Name:     strings.TrimSpace(f.Name),
		Location: strings.TrimSpace(f.Location),
		Lanes:    f.Lanes,
		Operator: strings.TrimSpace(f.Operator),
		Rate:     f.Rate,
	}
}

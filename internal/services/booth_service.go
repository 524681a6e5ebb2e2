package services

import (
	"fmt"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/store"
	"smarttoll/internal/utils"
)

// BoothService applies the admin CRUD rules for toll booths.
type BoothService struct {
	Store     *store.Store
	RequestID string
}

// List returns the current booth snapshot.
func (s BoothService) List() []models.TollBooth {
	return s.Store.Booths()
}

// Add validates the form and inserts a booth under a fresh id.
// Ids are monotonic so a delete never makes an old id reusable.
func (s BoothService) Add(form models.BoothForm) (models.TollBooth, error) {
	if err := form.Validate(); err != nil {
		return models.TollBooth{}, err
	}
	booth := form.Apply(s.Store.NextBoothID())
	s.Store.UpsertBooth(booth)
	utils.LogEvent(s.RequestID, "booth", "add", fmt.Sprintf("id=%d name=%s", booth.ID, booth.Name))
	return booth, nil
}

// Update replaces all mutable fields of an existing booth, preserving its id.
func (s BoothService) Update(id domain.ID, form models.BoothForm) (models.TollBooth, error) {
	if id <= 0 {
		return models.TollBooth{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	if err := form.Validate(); err != nil {
		return models.TollBooth{}, err
	}
	if _, ok := s.Store.GetBooth(id); !ok {
		return models.TollBooth{}, domain.NotFoundError{Resource: "booth"}
	}
	booth := form.Apply(id)
	s.Store.UpsertBooth(booth)
	utils.LogEvent(s.RequestID, "booth", "update", fmt.Sprintf("id=%d", id))
	return booth, nil
}

// Delete removes a booth. Idempotent: deleting a missing id is not an error.
func (s BoothService) Delete(id domain.ID) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	s.Store.RemoveBooth(id)
	utils.LogEvent(s.RequestID, "booth", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

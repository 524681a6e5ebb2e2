// Package store holds the in-memory entity collections behind copy-on-write
// snapshots. Readers take a snapshot reference and may keep it across
// concurrent writes; writers build a fresh slice and swap it under the lock,
// so no reader ever observes a torn record.
package store

import (
	"sync"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
)

type Store struct {
	mu          sync.RWMutex
	booths      []models.TollBooth
	passes      []models.VehiclePass
	nextBoothID domain.ID
	nextPassID  domain.ID
}

func New() *Store {
	return &Store{
		booths:      []models.TollBooth{},
		passes:      []models.VehiclePass{},
		nextBoothID: 1,
		nextPassID:  1,
	}
}

// Booths returns the current booth snapshot. Callers must not mutate it.
func (s *Store) Booths() []models.TollBooth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.booths
}

// Passes returns the current vehicle-pass snapshot. Callers must not mutate it.
func (s *Store) Passes() []models.VehiclePass {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.passes
}

// NextBoothID hands out a fresh booth id. Monotonic, never reused within a
// session even after deletions.
func (s *Store) NextBoothID() domain.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextBoothID
	s.nextBoothID++
	return id
}

// NextPassID hands out a fresh vehicle-pass id.
func (s *Store) NextPassID() domain.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextPassID
	s.nextPassID++
	return id
}

// UpsertBooth inserts the record if its id is absent, replaces it otherwise.
func (s *Store) UpsertBooth(b models.TollBooth) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booths = upsert(s.booths, b, func(x models.TollBooth) domain.ID { return x.ID })
	if b.ID >= s.nextBoothID {
		s.nextBoothID = b.ID + 1
	}
}

// RemoveBooth deletes the matching record. No-op when the id is absent.
func (s *Store) RemoveBooth(id domain.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booths = remove(s.booths, id, func(x models.TollBooth) domain.ID { return x.ID })
}

// GetBooth looks up a booth in the current snapshot.
func (s *Store) GetBooth(id domain.ID) (models.TollBooth, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.booths {
		if b.ID == id {
			return b, true
		}
	}
	return models.TollBooth{}, false
}

// UpsertPass inserts or replaces a vehicle pass.
func (s *Store) UpsertPass(p models.VehiclePass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passes = upsert(s.passes, p, func(x models.VehiclePass) domain.ID { return x.ID })
	if p.ID >= s.nextPassID {
		s.nextPassID = p.ID + 1
	}
}

// GetPass looks up a vehicle pass in the current snapshot.
func (s *Store) GetPass(id domain.ID) (models.VehiclePass, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.passes {
		if p.ID == id {
			return p, true
		}
	}
	return models.VehiclePass{}, false
}

// UpdatePass applies fn to the current record under the write lock, so the
// read-check-write of a lifecycle transition is atomic per record. When fn
// errors the collection is left untouched.
func (s *Store) UpdatePass(id domain.ID, fn func(models.VehiclePass) (models.VehiclePass, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.passes {
		if p.ID != id {
			continue
		}
		next, err := fn(p)
		if err != nil {
			return err
		}
		next.ID = id
		s.passes = upsert(s.passes, next, func(x models.VehiclePass) domain.ID { return x.ID })
		return nil
	}
	return domain.NotFoundError{Resource: "vehicle pass"}
}

func upsert[T any](in []T, rec T, id func(T) domain.ID) []T {
	out := make([]T, 0, len(in)+1)
	replaced := false
	for _, x := range in {
		if id(x) == id(rec) {
			out = append(out, rec)
			replaced = true
			continue
		}
		out = append(out, x)
	}
	if !replaced {
		out = append(out, rec)
	}
	return out
}

func remove[T any](in []T, target domain.ID, id func(T) domain.ID) []T {
	out := make([]T, 0, len(in))
	for _, x := range in {
		if id(x) == target {
			continue
		}
		out = append(out, x)
	}
	return out
}

package store

import (
	"testing"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
)

func TestBoothSnapshotStableAcrossWrites(t *testing.T) {
	s := New()
	s.UpsertBooth(models.TollBooth{ID: 1, Name: "Plaza A", Location: "Hwy 101", Lanes: 4, Operator: "John", Rate: 15.50})

	snap := s.Booths()
	if len(snap) != 1 {
		t.Fatalf("expected 1 booth, got %d", len(snap))
	}

	s.UpsertBooth(models.TollBooth{ID: 2, Name: "Plaza B", Location: "Hwy 101 S", Lanes: 6, Operator: "Jane", Rate: 20})
	s.RemoveBooth(1)

	// the old snapshot must be untouched by later writes
	if len(snap) != 1 || snap[0].ID != 1 || snap[0].Name != "Plaza A" {
		t.Fatalf("old snapshot mutated: %+v", snap)
	}
	if got := len(s.Booths()); got != 1 {
		t.Fatalf("expected 1 booth after remove, got %d", got)
	}
}

func TestUpsertBoothReplacesById(t *testing.T) {
	s := New()
	s.UpsertBooth(models.TollBooth{ID: 7, Name: "Plaza A", Lanes: 4})
	s.UpsertBooth(models.TollBooth{ID: 7, Name: "Plaza A2", Lanes: 5})

	booths := s.Booths()
	if len(booths) != 1 {
		t.Fatalf("expected replace, got %d records", len(booths))
	}
	if booths[0].Name != "Plaza A2" || booths[0].Lanes != 5 {
		t.Fatalf("unexpected record: %+v", booths[0])
	}
}

func TestRemoveBoothIdempotent(t *testing.T) {
	s := New()
	s.UpsertBooth(models.TollBooth{ID: 1, Name: "Plaza A"})
	s.RemoveBooth(99)
	s.RemoveBooth(1)
	s.RemoveBooth(1)
	if got := len(s.Booths()); got != 0 {
		t.Fatalf("expected empty store, got %d", got)
	}
}

func TestNextBoothIDMonotonicAfterDelete(t *testing.T) {
	s := New()
	first := s.NextBoothID()
	s.UpsertBooth(models.TollBooth{ID: first, Name: "Plaza A"})
	second := s.NextBoothID()
	s.UpsertBooth(models.TollBooth{ID: second, Name: "Plaza B"})
	s.RemoveBooth(second)

	third := s.NextBoothID()
	if third == second || third <= first {
		t.Fatalf("id reused after delete: first=%d second=%d third=%d", first, second, third)
	}
}

func TestNextIDsAdvancePastSeededRecords(t *testing.T) {
	s := New()
	s.UpsertBooth(models.TollBooth{ID: 3, Name: "Plaza C"})
	if id := s.NextBoothID(); id != 4 {
		t.Fatalf("expected next booth id 4, got %d", id)
	}
	s.UpsertPass(models.VehiclePass{ID: 10, VehicleNumber: "ABC-1234", Status: models.PassPaid})
	if id := s.NextPassID(); id != 11 {
		t.Fatalf("expected next pass id 11, got %d", id)
	}
}

func TestUpdatePassErrorLeavesRecordUntouched(t *testing.T) {
	s := New()
	s.UpsertPass(models.VehiclePass{ID: 1, VehicleNumber: "ABC-1234", Status: models.PassPaid})

	err := s.UpdatePass(1, func(p models.VehiclePass) (models.VehiclePass, error) {
		return p.WithStatus(models.PassFailed), domain.InvalidTransitionError{PassID: 1, From: p.Status, To: models.PassFailed}
	})
	if err == nil {
		t.Fatal("expected error")
	}
	p, ok := s.GetPass(1)
	if !ok || p.Status != models.PassPaid {
		t.Fatalf("record mutated on failed update: %+v", p)
	}
}

func TestUpdatePassMissing(t *testing.T) {
	s := New()
	err := s.UpdatePass(42, func(p models.VehiclePass) (models.VehiclePass, error) { return p, nil })
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

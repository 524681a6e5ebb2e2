package services

import (
	"testing"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/store"
)

func validBoothForm() models.BoothForm {
	return models.BoothForm{Name: "Plaza D", Location: "I-80", Lanes: 3, Operator: "Ana", Rate: 10}
}

func TestAddBoothAssignsNextId(t *testing.T) {
	st := store.New()
	st.UpsertBooth(models.TollBooth{ID: 1, Name: "Plaza A", Location: "Hwy 101", Lanes: 4, Operator: "John", Rate: 15.50})
	svc := BoothService{Store: st}

	booth, err := svc.Add(validBoothForm())
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if booth.ID != 2 {
		t.Fatalf("expected id 2, got %d", booth.ID)
	}
	if booth.Rate != 10 {
		t.Fatalf("expected rate 10, got %v", booth.Rate)
	}
	if got := len(svc.List()); got != 2 {
		t.Fatalf("expected 2 booths, got %d", got)
	}
}

func TestBoothIdsStayUniqueUnderChurn(t *testing.T) {
	st := store.New()
	svc := BoothService{Store: st}

	for i := 0; i < 5; i++ {
		if _, err := svc.Add(validBoothForm()); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if err := svc.Delete(2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.Add(validBoothForm()); err != nil {
			t.Fatalf("re-add %d: %v", i, err)
		}
	}

	seen := map[domain.ID]bool{}
	for _, b := range svc.List() {
		if seen[b.ID] {
			t.Fatalf("duplicate id %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestAddBoothValidation(t *testing.T) {
	st := store.New()
	svc := BoothService{Store: st}

	cases := []struct {
		name string
		mut  func(*models.BoothForm)
	}{
		{"empty name", func(f *models.BoothForm) { f.Name = "" }},
		{"whitespace name", func(f *models.BoothForm) { f.Name = "   " }},
		{"empty location", func(f *models.BoothForm) { f.Location = "" }},
		{"empty operator", func(f *models.BoothForm) { f.Operator = "" }},
		{"zero lanes", func(f *models.BoothForm) { f.Lanes = 0 }},
		{"negative lanes", func(f *models.BoothForm) { f.Lanes = -2 }},
		{"negative rate", func(f *models.BoothForm) { f.Rate = -0.5 }},
	}
	for _, tc := range cases {
		form := validBoothForm()
		tc.mut(&form)
		if _, err := svc.Add(form); !domain.IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
	if got := len(svc.List()); got != 0 {
		t.Fatalf("failed adds must not mutate store, got %d booths", got)
	}
}

func TestUpdateBoothMissing(t *testing.T) {
	st := store.New()
	svc := BoothService{Store: st}
	if _, err := svc.Add(validBoothForm()); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := svc.List()

	_, err := svc.Update(99, validBoothForm())
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	after := svc.List()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatal("store mutated by failed update")
	}
}

func TestUpdateBoothReplacesFieldsKeepsId(t *testing.T) {
	st := store.New()
	svc := BoothService{Store: st}
	booth, _ := svc.Add(validBoothForm())

	form := models.BoothForm{Name: "Plaza E", Location: "I-5", Lanes: 8, Operator: "Luis", Rate: 22.25}
	updated, err := svc.Update(booth.ID, form)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != booth.ID {
		t.Fatalf("id changed: %d -> %d", booth.ID, updated.ID)
	}
	if updated.Name != "Plaza E" || updated.Lanes != 8 || updated.Rate != 22.25 {
		t.Fatalf("fields not replaced: %+v", updated)
	}
}

func TestDeleteBoothIdempotent(t *testing.T) {
	st := store.New()
	svc := BoothService{Store: st}
	booth, _ := svc.Add(validBoothForm())

	if err := svc.Delete(booth.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(booth.ID); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if got := len(svc.List()); got != 0 {
		t.Fatalf("expected empty store, got %d", got)
	}
}

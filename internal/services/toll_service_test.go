package services

import (
	"math/rand"
	"testing"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/store"
)

func alwaysPaid(models.VehiclePass) domain.Status   { return models.PassPaid }
func alwaysFailed(models.VehiclePass) domain.Status { return models.PassFailed }

func TestDetectValidation(t *testing.T) {
	svc := TollService{Store: store.New()}

	if _, err := svc.Detect("", 3, 15.50); !domain.IsValidation(err) {
		t.Fatalf("empty vehicle: expected ValidationError, got %v", err)
	}
	if _, err := svc.Detect("ABC-1234", 0, 15.50); !domain.IsValidation(err) {
		t.Fatalf("lane 0: expected ValidationError, got %v", err)
	}
	if _, err := svc.Detect("ABC-1234", 3, -1); !domain.IsValidation(err) {
		t.Fatalf("negative amount: expected ValidationError, got %v", err)
	}
	if got := len(svc.List()); got != 0 {
		t.Fatalf("failed detects must not create records, got %d", got)
	}
}

func TestLifecycleForwardOnly(t *testing.T) {
	svc := TollService{Store: store.New()}
	pass, err := svc.Detect("ABC-1234", 3, 15.50)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if pass.Status != models.PassDetected {
		t.Fatalf("expected detected, got %s", pass.Status)
	}

	pass, err = svc.BeginProcessing(pass.ID)
	if err != nil {
		t.Fatalf("begin processing: %v", err)
	}
	if pass.Status != models.PassProcessing {
		t.Fatalf("expected processing, got %s", pass.Status)
	}

	// detected -> paid skips processing and must be refused
	other, _ := svc.Detect("XYZ-5678", 3, 15.50)
	if _, err := svc.Transition(other.ID, models.PassPaid); !domain.IsInvalidTransition(err) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestTerminalStateImmutable(t *testing.T) {
	svc := TollService{Store: store.New()}
	pass, _ := svc.Detect("ABC-1234", 3, 15.50)
	if _, err := svc.BeginProcessing(pass.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	settled, err := svc.Settle(pass.ID, alwaysPaid)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled.Status != models.PassPaid {
		t.Fatalf("expected paid, got %s", settled.Status)
	}

	if _, err := svc.Settle(pass.ID, alwaysFailed); !domain.IsInvalidTransition(err) {
		t.Fatalf("expected InvalidTransitionError on settled pass, got %v", err)
	}
	if _, err := svc.Transition(pass.ID, models.PassProcessing); !domain.IsInvalidTransition(err) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	got, _ := svc.Store.GetPass(pass.ID)
	if got.Status != models.PassPaid {
		t.Fatalf("terminal record mutated: %s", got.Status)
	}
}

func TestHundredTicksSettleExactlyOnce(t *testing.T) {
	svc := TollService{Store: store.New()}
	pass, _ := svc.Detect("ABC-1234", 3, 15.50)
	if _, err := svc.BeginProcessing(pass.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}

	decide := RandomDecision(rand.NewSource(1), 0.9)
	for i := 0; i < 100; i++ {
		svc.AdvanceProcessing(decide)
	}

	got, _ := svc.Store.GetPass(pass.ID)
	if !models.Terminal(got.Status) {
		t.Fatalf("expected terminal status after ticks, got %s", got.Status)
	}
	first := got.Status
	for i := 0; i < 100; i++ {
		svc.AdvanceProcessing(decide)
	}
	got, _ = svc.Store.GetPass(pass.ID)
	if got.Status != first {
		t.Fatalf("terminal status oscillated: %s -> %s", first, got.Status)
	}
}

func TestAdvanceProcessingSkipsTerminalAndDetected(t *testing.T) {
	svc := TollService{Store: store.New()}
	detected, _ := svc.Detect("AAA-0001", 1, 10)
	inFlight, _ := svc.Detect("BBB-0002", 1, 10)
	if _, err := svc.BeginProcessing(inFlight.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	done, _ := svc.Detect("CCC-0003", 1, 10)
	if _, err := svc.BeginProcessing(done.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := svc.Settle(done.ID, alwaysFailed); err != nil {
		t.Fatalf("settle: %v", err)
	}

	if n := svc.AdvanceProcessing(alwaysPaid); n != 1 {
		t.Fatalf("expected 1 settled, got %d", n)
	}
	if p, _ := svc.Store.GetPass(detected.ID); p.Status != models.PassDetected {
		t.Fatalf("detected pass touched: %s", p.Status)
	}
	if p, _ := svc.Store.GetPass(done.ID); p.Status != models.PassFailed {
		t.Fatalf("terminal pass touched: %s", p.Status)
	}
	if p, _ := svc.Store.GetPass(inFlight.ID); p.Status != models.PassPaid {
		t.Fatalf("processing pass not settled: %s", p.Status)
	}
}

func TestRandomDecisionDeterministicPerSeed(t *testing.T) {
	a := RandomDecision(rand.NewSource(7), 0.9)
	b := RandomDecision(rand.NewSource(7), 0.9)
	p := models.VehiclePass{ID: 1, Status: models.PassProcessing}
	for i := 0; i < 50; i++ {
		if a(p) != b(p) {
			t.Fatal("same seed must produce same decisions")
		}
	}
}

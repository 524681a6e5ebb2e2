package services

import (
	"bytes"
	"testing"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/store"
)

func TestGenerateReceipt(t *testing.T) {
	st := store.New()
	st.UpsertPass(models.VehiclePass{ID: 1, VehicleNumber: "ABC-1234", Status: models.PassPaid, Amount: 15.50, Timestamp: "14:35:20", Lane: 3})
	svc := DocsService{Store: st, Wallets: NewWalletService()}

	pdf, filename, err := svc.GenerateReceipt(1)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatal("GenerateReceipt returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}

func TestGenerateReceiptOnlyForPaid(t *testing.T) {
	st := store.New()
	st.UpsertPass(models.VehiclePass{ID: 1, VehicleNumber: "XYZ-5678", Status: models.PassProcessing, Amount: 15.50, Lane: 3})
	svc := DocsService{Store: st, Wallets: NewWalletService()}

	if _, _, err := svc.GenerateReceipt(1); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for unpaid pass, got %v", err)
	}
	if _, _, err := svc.GenerateReceipt(99); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGenerateStatement(t *testing.T) {
	wallets := NewWalletService()
	wallets.Seed(1, 250.50, []models.Transaction{
		{ID: 2, Date: "2024-01-14", Time: "09:15", Booth: "Wallet Recharge", Amount: 100.00, Type: models.TxRecharge},
		{ID: 1, Date: "2024-01-13", Time: "18:45", Booth: "Plaza B - Lane 1", Amount: 20.00, Type: models.TxToll},
	})
	svc := DocsService{Store: store.New(), Wallets: wallets}

	pdf, filename, err := svc.GenerateStatement(1)
	if err != nil {
		t.Fatalf("GenerateStatement returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatal("GenerateStatement returned empty data")
	}
}

func TestGenerateStatementEmptyWallet(t *testing.T) {
	svc := DocsService{Store: store.New(), Wallets: NewWalletService()}
	pdf, _, err := svc.GenerateStatement(5)
	if err != nil {
		t.Fatalf("GenerateStatement returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty wallet should still render a statement")
	}
}

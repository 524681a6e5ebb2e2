package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/store"
	"smarttoll/internal/utils"
)

// DocsService renders crossing receipts and wallet statements as PDFs.
type DocsService struct {
	Store     *store.Store
	Wallets   *WalletService
	RequestID string
}

// GenerateReceipt renders the receipt for one settled crossing. Only paid
// passes have a receipt; anything else is a validation failure.
func (s DocsService) GenerateReceipt(passID domain.ID) ([]byte, string, error) {
	pass, ok := s.Store.GetPass(passID)
	if !ok {
		return nil, "", domain.NotFoundError{Resource: "vehicle pass"}
	}
	if pass.Status != models.PassPaid {
		return nil, "", domain.ValidationError{Field: "status", Msg: "receipt available for paid crossings only"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("pass_id=%d", passID))
	return buildReceiptPDF(pass)
}

// GenerateStatement renders the user's wallet history.
func (s DocsService) GenerateStatement(userID domain.ID) ([]byte, string, error) {
	w := s.Wallets.Snapshot(userID)
	utils.LogEvent(s.RequestID, "docs", "generate_statement", fmt.Sprintf("user=%d lines=%d", userID, len(w.Transactions)))
	return buildStatementPDF(w)
}

func buildReceiptPDF(p models.VehiclePass) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Toll Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TOLL RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No   : RCP-%d", p.ID),
		fmt.Sprintf("Vehicle      : %s", safe(p.VehicleNumber, "-")),
		fmt.Sprintf("Lane         : %d", p.Lane),
		fmt.Sprintf("Time         : %s", safe(p.Timestamp, "-")),
		fmt.Sprintf("Amount       : $%s", utils.FormatMoney(p.Amount)),
		"Status       : PAID",
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt covers a single crossing. Keep it for reimbursement claims.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", p.ID, safeFilenamePart(p.VehicleNumber))
	return buf.Bytes(), filename, nil
}

func buildStatementPDF(w models.WalletAccount) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Wallet Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "WALLET STATEMENT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Generated  : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Balance    : $"+utils.FormatMoney(w.Balance))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(28, 7, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(18, 7, "Time", "1", 0, "", false, 0, "")
	pdf.CellFormat(80, 7, "Description", "1", 0, "", false, 0, "")
	pdf.CellFormat(22, 7, "Type", "1", 0, "", false, 0, "")
	pdf.CellFormat(28, 7, "Amount", "1", 0, "R", false, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, tx := range w.Transactions {
		amount := utils.FormatMoney(tx.Amount)
		if tx.Type == models.TxToll {
			amount = "-" + amount
		} else {
			amount = "+" + amount
		}
		pdf.CellFormat(28, 7, safe(tx.Date, "-"), "1", 0, "", false, 0, "")
		pdf.CellFormat(18, 7, safe(tx.Time, "-"), "1", 0, "", false, 0, "")
		pdf.CellFormat(80, 7, safe(tx.Booth, "-"), "1", 0, "", false, 0, "")
		pdf.CellFormat(22, 7, tx.Type, "1", 0, "", false, 0, "")
		pdf.CellFormat(28, 7, amount, "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	if len(w.Transactions) == 0 {
		pdf.CellFormat(176, 7, "No transactions yet", "1", 0, "C", false, 0, "")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("STATEMENT_%d.pdf", w.UserID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "doc"
	}
	return out
}

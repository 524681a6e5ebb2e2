package models

import "smarttoll/internal/domain"

const (
	TxToll     = "toll"
	TxRecharge = "recharge"
)

// Transaction is one append-only ledger line. Recharges credit the
// balance, tolls debit it.
type Transaction struct {
	ID     domain.ID `json:"id"`
	Date   string    `json:"date"`
	Time   string    `json:"time"`
	Booth  string    `json:"booth"`
	Amount float64   `json:"amount"`
	Type   string    `json:"type"`
}

// WalletAccount holds a user's prepaid balance and its history,
// most-recent-first. Invariant: Balance equals the signed sum of
// Transactions (recharge +, toll -).
type WalletAccount struct {
	UserID       domain.ID     `json:"userId"`
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

// Signed returns the transaction amount with its ledger sign applied.
func (t Transaction) Signed() float64 {
	if t.Type == TxToll {
		return -t.Amount
	}
	return t.Amount
}

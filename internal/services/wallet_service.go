package services

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/utils"
)

// WalletService keeps one prepaid wallet per user. Each mutation builds a
// fresh transaction slice, so snapshots handed to callers stay stable.
type WalletService struct {
	mu        sync.RWMutex
	wallets   map[domain.ID]*models.WalletAccount
	nextTxID  domain.ID
	RequestID string
}

func NewWalletService() *WalletService {
	return &WalletService{
		wallets:  map[domain.ID]*models.WalletAccount{},
		nextTxID: 1,
	}
}

// Seed installs an initial wallet, used at boot for demo accounts.
func (s *WalletService) Seed(userID domain.ID, balance float64, txs []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range txs {
		if t.ID >= s.nextTxID {
			s.nextTxID = t.ID + 1
		}
	}
	s.wallets[userID] = &models.WalletAccount{UserID: userID, Balance: balance, Transactions: txs}
}

// Snapshot returns a stable copy of the user's wallet. A user without prior
// activity gets an empty wallet.
func (s *WalletService) Snapshot(userID domain.ID) models.WalletAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wallets[userID]
	if !ok {
		return models.WalletAccount{UserID: userID, Transactions: []models.Transaction{}}
	}
	return models.WalletAccount{UserID: userID, Balance: w.Balance, Transactions: w.Transactions}
}

// Recharge credits the wallet and prepends a recharge line. Non-positive or
// non-finite amounts are rejected without touching the wallet.
func (s *WalletService) Recharge(userID domain.ID, amount float64) (models.WalletAccount, error) {
	if err := validAmount(amount); err != nil {
		return models.WalletAccount{}, err
	}
	amount = utils.RoundCents(amount)

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(userID)
	w.Balance = utils.RoundCents(w.Balance + amount)
	s.prependLocked(w, "Wallet Recharge", amount, models.TxRecharge)
	utils.LogEvent(s.RequestID, "wallet", "recharge", fmt.Sprintf("user=%d amount=%s", userID, utils.FormatMoney(amount)))
	return models.WalletAccount{UserID: userID, Balance: w.Balance, Transactions: w.Transactions}, nil
}

// PayToll debits the wallet for a crossing. Fails closed: a debit that would
// push the balance below zero reports InsufficientFundsError and leaves the
// wallet untouched.
func (s *WalletService) PayToll(userID domain.ID, amount float64, boothLabel string) (models.WalletAccount, error) {
	if err := validAmount(amount); err != nil {
		return models.WalletAccount{}, err
	}
	boothLabel = strings.TrimSpace(boothLabel)
	if boothLabel == "" {
		return models.WalletAccount{}, domain.ValidationError{Field: "booth", Msg: "must not be empty"}
	}
	amount = utils.RoundCents(amount)

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(userID)
	if w.Balance < amount {
		return models.WalletAccount{}, domain.InsufficientFundsError{Balance: w.Balance, Amount: amount}
	}
	w.Balance = utils.RoundCents(w.Balance - amount)
	s.prependLocked(w, boothLabel, amount, models.TxToll)
	utils.LogEvent(s.RequestID, "wallet", "pay_toll", fmt.Sprintf("user=%d amount=%s booth=%s", userID, utils.FormatMoney(amount), boothLabel))
	return models.WalletAccount{UserID: userID, Balance: w.Balance, Transactions: w.Transactions}, nil
}

func (s *WalletService) walletLocked(userID domain.ID) *models.WalletAccount {
	w, ok := s.wallets[userID]
	if !ok {
		w = &models.WalletAccount{UserID: userID, Transactions: []models.Transaction{}}
		s.wallets[userID] = w
	}
	return w
}

func (s *WalletService) prependLocked(w *models.WalletAccount, label string, amount float64, kind string) {
	tx := models.Transaction{
		ID:     s.nextTxID,
		Date:   utils.FormatDate(utils.NowUTC()),
		Time:   utils.NowClockHM(),
		Booth:  label,
		Amount: amount,
		Type:   kind,
	}
	s.nextTxID++
	next := make([]models.Transaction, 0, len(w.Transactions)+1)
	next = append(next, tx)
	next = append(next, w.Transactions...)
	w.Transactions = next
}

func validAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.ValidationError{Field: "amount", Msg: "must be a finite number"}
	}
	if amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}
	return nil
}

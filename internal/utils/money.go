package utils

import (
	"fmt"
	"math"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// RoundCents clamps an amount to two decimal places of meaning.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

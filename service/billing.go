package service

import (
	"strconv"

	"go-postgres-optics/models"
)

// ParseAmount reads a form amount the way the intake form does: empty or
// non-numeric input counts as zero instead of failing.
func ParseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

type Billing struct {
	Payable float64 `json:"payable"`
	Balance float64 `json:"balance"`
	Payment string  `json:"payment"`
}

// ComputeBilling derives the payable and outstanding balance for an order.
// A zero balance means the order is fully paid at intake.
func ComputeBilling(total, discount, advance float64) Billing {
	payable := total - discount
	balance := payable - advance

	payment := models.PaymentNotPaid
	if balance == 0 {
		payment = models.PaymentPaid
	}

	return Billing{Payable: payable, Balance: balance, Payment: payment}
}

type Settlement struct {
	AdvanceAmount float64 `json:"advance_amount"`
	BalanceAmount float64 `json:"balance_amount"`
	Payment       string  `json:"payment"`
}

// SettleOrder folds the outstanding balance into the advance and marks the
// order Paid; the outstanding amount counts as received at settlement time.
// An already-Paid order comes back unchanged with changed=false.
func SettleOrder(advance, balance float64, payment string) (s Settlement, changed bool) {
	if payment == models.PaymentPaid {
		return Settlement{AdvanceAmount: advance, BalanceAmount: balance, Payment: payment}, false
	}
	return Settlement{
		AdvanceAmount: advance + balance,
		BalanceAmount: 0,
		Payment:       models.PaymentPaid,
	}, true
}

package projections

import "klusmarkt/internal/domain/money"

// Breakdown splits a quoted amount between the platform and the craftsman.
type Breakdown struct {
	Amount           money.Amount `json:"amount"`
	CommissionRate   float64      `json:"commissionRate"`
	CommissionAmount money.Amount `json:"commissionAmount"`
	NetAmount        money.Amount `json:"netAmount"`
}

// CommissionBreakdown rounds the commission once to the cent and derives the net
// amount by subtraction, so CommissionAmount + NetAmount == amount always.
func CommissionBreakdown(amount money.Amount, rate float64) Breakdown {
	commission := amount.Percent(rate)
	return Breakdown{
		Amount:           amount,
		CommissionRate:   rate,
		CommissionAmount: commission,
		NetAmount:        amount - commission,
	}
}

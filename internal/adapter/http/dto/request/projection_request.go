package request

import "klusmarkt/internal/domain/money"

type CommissionRequest struct {
	Amount money.Amount `json:"amount"`
	Rate   float64      `json:"rate" binding:"required"`
}

type InstallmentsRequest struct {
	Total        money.Amount `json:"total"`
	Installments int          `json:"installments" binding:"required"`
	From         string       `json:"from"`
}

package request

import (
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
	"klusmarkt/internal/usecase"
)

type QuoteRequest struct {
	JobID          string                `json:"jobId" binding:"required"`
	Craftsman      entities.CraftsmanRef `json:"craftsman"`
	Description    string                `json:"description"`
	ProposedAmount money.Amount          `json:"proposedAmount"`
	CommissionRate *float64              `json:"commissionRate"`
}

func (r QuoteRequest) ToDraft() usecase.QuoteDraft {
	return usecase.QuoteDraft{
		JobID:          r.JobID,
		Craftsman:      r.Craftsman,
		Description:    r.Description,
		ProposedAmount: r.ProposedAmount,
		CommissionRate: r.CommissionRate,
	}
}

type QuotePatchRequest struct {
	Description    *string       `json:"description"`
	ProposedAmount *money.Amount `json:"proposedAmount"`
	CommissionRate *float64      `json:"commissionRate"`
}

func (r QuotePatchRequest) ToPatch() usecase.QuotePatch {
	return usecase.QuotePatch{
		Description:    r.Description,
		ProposedAmount: r.ProposedAmount,
		CommissionRate: r.CommissionRate,
	}
}

type AcceptQuoteRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Signature    string `json:"signature"`
	Notes        string `json:"notes"`
}

func (r AcceptQuoteRequest) ToInput() usecase.AcceptanceInput {
	return usecase.AcceptanceInput{CustomerName: r.CustomerName, Signature: r.Signature, Notes: r.Notes}
}

type RecordPaymentRequest struct {
	Method       string `json:"method" binding:"required"`
	Installments int    `json:"installments"`
}

// NumInstallments defaults to a single payment.
func (r RecordPaymentRequest) NumInstallments() int {
	if r.Installments == 0 {
		return 1
	}
	return r.Installments
}

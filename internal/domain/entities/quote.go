package entities

import (
	"time"

	"klusmarkt/internal/domain/money"
)

// QuoteStatus represents the lifecycle of a craftsman's quote (also used as the invoice).
//
//	pending -> accepted   (customer action; records CustomerAcceptance)
//	pending -> rejected
//
// Both targets are terminal. After acceptance only the Payment bookkeeping may change.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusPaid          PaymentStatus = "paid"
)

type CraftsmanRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type CustomerAcceptance struct {
	AcceptedAt   time.Time `json:"acceptedAt"`
	CustomerName string    `json:"customerName"`
	Signature    string    `json:"signature,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type Installment struct {
	Number  int          `json:"number"`
	Amount  money.Amount `json:"amount"`
	DueDate string       `json:"dueDate"`
	Paid    bool         `json:"paid"`
	PaidAt  *time.Time   `json:"paidAt,omitempty"`
}

type Payment struct {
	Method       string        `json:"method"`
	Status       PaymentStatus `json:"status"`
	Installments []Installment `json:"installments"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Quote is a craftsman's priced offer on a Job, stored under "invoices".
//
// CommissionAmount + NetAmount always equals ProposedAmount; both are derived
// from ProposedAmount and CommissionRate and never accepted from callers.
type Quote struct {
	ID                 string              `json:"id"`
	InvoiceNumber      string              `json:"invoiceNumber"`
	JobID              string              `json:"jobId"`
	Craftsman          CraftsmanRef        `json:"craftsman"`
	Description        string              `json:"description,omitempty"`
	ProposedAmount     money.Amount        `json:"proposedAmount"`
	CommissionRate     float64             `json:"commissionRate"`
	CommissionAmount   money.Amount        `json:"commissionAmount"`
	NetAmount          money.Amount        `json:"netAmount"`
	Status             QuoteStatus         `json:"status"`
	ApplicationDate    time.Time           `json:"applicationDate"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	CustomerAcceptance *CustomerAcceptance `json:"customerAcceptance,omitempty"`
	Payment            *Payment            `json:"payment,omitempty"`
}

func (q Quote) EntityID() string { return q.ID }

func (q Quote) CanTransition(next QuoteStatus) bool {
	return q.Status == QuoteStatusPending && (next == QuoteStatusAccepted || next == QuoteStatusRejected)
}

package entities

import (
	"time"

	"klusmarkt/internal/domain/money"
)

// AgendaStatus: scheduled -> in_progress -> completed; cancelled from any non-terminal state.
type AgendaStatus string

const (
	AgendaStatusScheduled  AgendaStatus = "scheduled"
	AgendaStatusInProgress AgendaStatus = "in_progress"
	AgendaStatusCompleted  AgendaStatus = "completed"
	AgendaStatusCancelled  AgendaStatus = "cancelled"
)

var agendaTransitions = map[AgendaStatus][]AgendaStatus{
	AgendaStatusScheduled:  {AgendaStatusInProgress, AgendaStatusCancelled},
	AgendaStatusInProgress: {AgendaStatusCompleted, AgendaStatusCancelled},
}

func (s AgendaStatus) Terminal() bool {
	return s == AgendaStatusCompleted || s == AgendaStatusCancelled
}

// AgendaItem is an appointment in the craftsman's calendar, stored under "agendaItems".
//
// Date is YYYY-MM-DD and times are HH:MM in the craftsman's local time.
type AgendaItem struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	ClientName        string       `json:"clientName"`
	ClientPhone       string       `json:"clientPhone,omitempty"`
	ClientEmail       string       `json:"clientEmail,omitempty"`
	Location          string       `json:"location,omitempty"`
	Date              string       `json:"date"`
	StartTime         string       `json:"startTime,omitempty"`
	EndTime           string       `json:"endTime,omitempty"`
	Status            AgendaStatus `json:"status"`
	Amount            money.Amount `json:"amount"`
	CommissionRate    float64      `json:"commissionRate,omitempty"`
	JobType           string       `json:"jobType,omitempty"`
	EstimatedDuration string       `json:"estimatedDuration,omitempty"`
	QuoteID           string       `json:"quoteId,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

func (a AgendaItem) EntityID() string { return a.ID }

func (a AgendaItem) CanTransition(next AgendaStatus) bool {
	for _, s := range agendaTransitions[a.Status] {
		if s == next {
			return true
		}
	}
	return false
}

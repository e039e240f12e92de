package request

import (
	"klusmarkt/internal/domain/money"
	"klusmarkt/internal/usecase"
)

type AgendaRequest struct {
	Title             string       `json:"title" binding:"required"`
	ClientName        string       `json:"clientName"`
	ClientPhone       string       `json:"clientPhone"`
	ClientEmail       string       `json:"clientEmail"`
	Location          string       `json:"location"`
	Date              string       `json:"date" binding:"required"`
	StartTime         string       `json:"startTime"`
	EndTime           string       `json:"endTime"`
	Amount            money.Amount `json:"amount"`
	CommissionRate    float64      `json:"commissionRate"`
	JobType           string       `json:"jobType"`
	EstimatedDuration string       `json:"estimatedDuration"`
	Notes             string       `json:"notes"`
}

func (r AgendaRequest) ToDraft() usecase.AgendaDraft {
	return usecase.AgendaDraft{
		Title:             r.Title,
		ClientName:        r.ClientName,
		ClientPhone:       r.ClientPhone,
		ClientEmail:       r.ClientEmail,
		Location:          r.Location,
		Date:              r.Date,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Amount:            r.Amount,
		CommissionRate:    r.CommissionRate,
		JobType:           r.JobType,
		EstimatedDuration: r.EstimatedDuration,
		Notes:             r.Notes,
	}
}

type AgendaPatchRequest struct {
	Title             *string       `json:"title"`
	ClientName        *string       `json:"clientName"`
	ClientPhone       *string       `json:"clientPhone"`
	ClientEmail       *string       `json:"clientEmail"`
	Location          *string       `json:"location"`
	Date              *string       `json:"date"`
	StartTime         *string       `json:"startTime"`
	EndTime           *string       `json:"endTime"`
	Amount            *money.Amount `json:"amount"`
	JobType           *string       `json:"jobType"`
	EstimatedDuration *string       `json:"estimatedDuration"`
	Notes             *string       `json:"notes"`
}

func (r AgendaPatchRequest) ToPatch() usecase.AgendaPatch {
	return usecase.AgendaPatch{
		Title:             r.Title,
		ClientName:        r.ClientName,
		ClientPhone:       r.ClientPhone,
		ClientEmail:       r.ClientEmail,
		Location:          r.Location,
		Date:              r.Date,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Amount:            r.Amount,
		JobType:           r.JobType,
		EstimatedDuration: r.EstimatedDuration,
		Notes:             r.Notes,
	}
}

// ScheduleQuoteRequest books an accepted quote into the agenda.
type ScheduleQuoteRequest struct {
	QuoteID   string `json:"quoteId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type UpcomingQuery struct {
	From string `form:"from"`
	Days int    `form:"days"`
}

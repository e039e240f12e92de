package entities

import (
	"testing"
	"time"
)

func TestQuote_CanTransition(t *testing.T) {
	cases := []struct {
		from QuoteStatus
		to   QuoteStatus
		want bool
	}{
		{QuoteStatusPending, QuoteStatusAccepted, true},
		{QuoteStatusPending, QuoteStatusRejected, true},
		{QuoteStatusAccepted, QuoteStatusRejected, false},
		{QuoteStatusRejected, QuoteStatusAccepted, false},
		{QuoteStatusAccepted, QuoteStatusAccepted, false},
	}
	for _, tc := range cases {
		q := Quote{Status: tc.from}
		if got := q.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestAgendaItem_CanTransition(t *testing.T) {
	cases := []struct {
		from AgendaStatus
		to   AgendaStatus
		want bool
	}{
		{AgendaStatusScheduled, AgendaStatusInProgress, true},
		{AgendaStatusScheduled, AgendaStatusCancelled, true},
		{AgendaStatusScheduled, AgendaStatusCompleted, false},
		{AgendaStatusInProgress, AgendaStatusCompleted, true},
		{AgendaStatusInProgress, AgendaStatusCancelled, true},
		{AgendaStatusCompleted, AgendaStatusCancelled, false},
		{AgendaStatusCancelled, AgendaStatusScheduled, false},
	}
	for _, tc := range cases {
		a := AgendaItem{Status: tc.from}
		if got := a.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestJob_CanTransition(t *testing.T) {
	if !(Job{Status: JobStatusActive}).CanTransition(JobStatusFilled) {
		t.Fatalf("expected active -> filled")
	}
	if (Job{Status: JobStatusCancelled}).CanTransition(JobStatusFilled) {
		t.Fatalf("expected cancelled to be terminal")
	}
}

func TestPlans(t *testing.T) {
	for _, rate := range []float64{15, 7.5, 5} {
		if !AllowedCommissionRate(rate) {
			t.Fatalf("expected %v to be allowed", rate)
		}
	}
	if AllowedCommissionRate(10) {
		t.Fatalf("expected 10 to be rejected")
	}
	elite, ok := TermsFor(PlanElite)
	if !ok || elite.CommissionRate != 5 || elite.Rank != 2 {
		t.Fatalf("unexpected elite terms: %+v", elite)
	}
	free := FreeSubscription(time.Now())
	if free.Plan != PlanFree || free.CommissionRate != 15 {
		t.Fatalf("unexpected free subscription: %+v", free)
	}
}

func TestAvailability_WorksOn(t *testing.T) {
	s := DefaultAvailability()
	if !s.WorksOn(time.Monday) || s.WorksOn(time.Sunday) {
		t.Fatalf("unexpected working days: %v", s.WorkingDays)
	}
}

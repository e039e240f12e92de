package entities

import (
	"time"

	"klusmarkt/internal/domain/money"
)

type UserRole string

const (
	UserRoleCustomer  UserRole = "customer"
	UserRoleCraftsman UserRole = "craftsman"
)

// UserProfile is the local singleton stored under "userProfile".
type UserProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        UserRole  `json:"role"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	KvkNumber   string    `json:"kvkNumber,omitempty"`
	VatNumber   string    `json:"vatNumber,omitempty"`
	Street      string    `json:"street,omitempty"`
	PostalCode  string    `json:"postalCode,omitempty"`
	City        string    `json:"city,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Plan string

const (
	PlanFree         Plan = "free"
	PlanProfessional Plan = "professional"
	PlanElite        Plan = "elite"
)

type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// PlanTerms are the fixed commercial terms of a plan.
type PlanTerms struct {
	Plan           Plan         `json:"plan"`
	Rank           int          `json:"rank"`
	CommissionRate float64      `json:"commissionRate"`
	MonthlyPrice   money.Amount `json:"monthlyPrice"`
}

var plans = map[Plan]PlanTerms{
	PlanFree:         {Plan: PlanFree, Rank: 0, CommissionRate: 15, MonthlyPrice: 0},
	PlanProfessional: {Plan: PlanProfessional, Rank: 1, CommissionRate: 7.5, MonthlyPrice: money.FromMajor(29)},
	PlanElite:        {Plan: PlanElite, Rank: 2, CommissionRate: 5, MonthlyPrice: money.FromMajor(59)},
}

// TermsFor returns the terms of p and whether p is a known plan.
func TermsFor(p Plan) (PlanTerms, bool) {
	t, ok := plans[p]
	return t, ok
}

// Plans returns every plan ordered from lowest to highest rank.
func Plans() []PlanTerms {
	out := make([]PlanTerms, len(plans))
	for _, t := range plans {
		out[t.Rank] = t
	}
	return out
}

// AllowedCommissionRate reports whether rate belongs to one of the plans.
func AllowedCommissionRate(rate float64) bool {
	for _, t := range plans {
		if t.CommissionRate == rate {
			return true
		}
	}
	return false
}

// SubscriptionState is the local singleton stored under "subscriptionData".
type SubscriptionState struct {
	Plan            Plan         `json:"plan"`
	CommissionRate  float64      `json:"commissionRate"`
	MonthlyPrice    money.Amount `json:"monthlyPrice"`
	BillingCycle    BillingCycle `json:"billingCycle"`
	StartedAt       time.Time    `json:"startedAt"`
	NextBillingDate string       `json:"nextBillingDate,omitempty"`
	LastPaymentID   string       `json:"lastPaymentId,omitempty"`
}

// FreeSubscription is the state of a user that never upgraded.
func FreeSubscription(now time.Time) SubscriptionState {
	t := plans[PlanFree]
	return SubscriptionState{
		Plan:           PlanFree,
		CommissionRate: t.CommissionRate,
		MonthlyPrice:   t.MonthlyPrice,
		BillingCycle:   BillingCycleMonthly,
		StartedAt:      now,
	}
}

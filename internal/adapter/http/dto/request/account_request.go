package request

import (
	"strings"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"
)

type ProfileRequest struct {
	Email       string `json:"email" binding:"required"`
	Role        string `json:"role" binding:"required"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	KvkNumber   string `json:"kvkNumber"`
	VatNumber   string `json:"vatNumber"`
	Street      string `json:"street"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
}

func (r ProfileRequest) ToInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		Email:       r.Email,
		Role:        entities.UserRole(strings.ToLower(strings.TrimSpace(r.Role))),
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		CompanyName: r.CompanyName,
		KvkNumber:   r.KvkNumber,
		VatNumber:   r.VatNumber,
		Street:      r.Street,
		PostalCode:  r.PostalCode,
		City:        r.City,
	}
}

type SignUpRequest struct {
	ProfileRequest
	Password string `json:"password" binding:"required"`
	Plan     string `json:"plan"`
}

func (r SignUpRequest) ToInput() usecase.SignUpInput {
	return usecase.SignUpInput{
		ProfileInput: r.ProfileRequest.ToInput(),
		Password:     r.Password,
		Plan:         entities.Plan(strings.ToLower(strings.TrimSpace(r.Plan))),
	}
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpgradeRequest struct {
	Plan            string `json:"plan" binding:"required"`
	BillingCycle    string `json:"billingCycle"`
	PaymentMethodID string `json:"paymentMethodId"`
	PayerEmail      string `json:"payerEmail"`
}

func (r UpgradeRequest) ToInput() usecase.UpgradeInput {
	return usecase.UpgradeInput{
		Plan:            entities.Plan(strings.ToLower(strings.TrimSpace(r.Plan))),
		BillingCycle:    entities.BillingCycle(strings.ToLower(strings.TrimSpace(r.BillingCycle))),
		PaymentMethodID: r.PaymentMethodID,
		PayerEmail:      r.PayerEmail,
	}
}

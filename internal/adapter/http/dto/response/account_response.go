package response

import "klusmarkt/internal/domain/entities"

type AuthUserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"emailConfirmed"`
}

type SessionResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	TokenType    string           `json:"tokenType"`
	ExpiresIn    int              `json:"expiresIn"`
	User         AuthUserResponse `json:"user"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		User: AuthUserResponse{
			ID:             s.User.ID,
			Email:          s.User.Email,
			EmailConfirmed: s.User.EmailConfirmed,
		},
	}
}

// PlanResponse lists the terms of one plan.
type PlanResponse struct {
	Plan           string  `json:"plan"`
	CommissionRate float64 `json:"commissionRate"`
	MonthlyPrice   string  `json:"monthlyPrice"`
	YearlyPrice    string  `json:"yearlyPrice"`
}

func FromPlanTerms(t entities.PlanTerms) PlanResponse {
	return PlanResponse{
		Plan:           string(t.Plan),
		CommissionRate: t.CommissionRate,
		MonthlyPrice:   t.MonthlyPrice.String(),
		YearlyPrice:    (t.MonthlyPrice * 12).String(),
	}
}

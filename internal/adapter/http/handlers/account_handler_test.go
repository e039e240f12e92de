package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"klusmarkt/internal/adapter/http/handlers/mocks"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAccountRouter(h *AccountHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/account/profile", h.GetProfile)
	r.PUT("/v1/account/profile", h.SaveProfile)
	r.GET("/v1/account/subscription", h.GetSubscription)
	r.POST("/v1/account/subscription/upgrade", h.Upgrade)
	r.GET("/v1/plans", h.ListPlans)
	r.POST("/v1/auth/signup", h.SignUp)
	r.POST("/v1/auth/signin", h.SignIn)
	return r
}

func TestAccountHandler_SignIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "invalid credentials",
			err:      &usecase.ExternalServiceError{Service: "supabase", Tag: usecase.TagInvalidCredentials},
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_CREDENTIALS",
		},
		{
			name:     "email unconfirmed",
			err:      &usecase.ExternalServiceError{Service: "supabase", Tag: usecase.TagEmailUnconfirmed},
			wantCode: http.StatusForbidden,
			wantBody: "EMAIL_UNCONFIRMED",
		},
		{
			name:     "upstream failure",
			err:      &usecase.ExternalServiceError{Service: "supabase", Tag: usecase.TagUnknown, Message: "status 500"},
			wantCode: http.StatusBadGateway,
			wantBody: "EXTERNAL_SERVICE_ERROR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAccountUseCase(ctrl)
			r := newAccountRouter(NewAccountHandler(uc))

			uc.EXPECT().SignIn(gomock.Any(), "a@b.nl", "pw").Return(entities.Session{}, tt.err)

			w := performRequest(r, http.MethodPost, "/v1/auth/signin", `{"email":"a@b.nl","password":"pw"}`)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if code := decodeError(t, w); code != tt.wantBody {
				t.Fatalf("expected %s, got %s", tt.wantBody, code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAccountUseCase(ctrl)
		r := newAccountRouter(NewAccountHandler(uc))

		uc.EXPECT().SignIn(gomock.Any(), "a@b.nl", "pw").Return(entities.Session{AccessToken: "tok", User: entities.AuthUser{ID: "u-1"}}, nil)

		w := performRequest(r, http.MethodPost, "/v1/auth/signin", `{"email":"a@b.nl","password":"pw"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["accessToken"] != "tok" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAccountHandler_SignUp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAccountUseCase(ctrl)
	r := newAccountRouter(NewAccountHandler(uc))

	uc.EXPECT().SignUp(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.SignUpInput) (entities.UserProfile, error) {
		if in.Role != entities.UserRoleCraftsman || in.Plan != entities.PlanElite || in.CompanyName != "Piet BV" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return entities.UserProfile{ID: "u-1", Email: in.Email, Role: in.Role}, nil
	})

	w := performRequest(r, http.MethodPost, "/v1/auth/signup",
		`{"email":"piet@example.nl","password":"secret1","role":"Craftsman","companyName":"Piet BV","plan":"ELITE"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestAccountHandler_Upgrade(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("downgrade rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAccountUseCase(ctrl)
		r := newAccountRouter(NewAccountHandler(uc))

		uc.EXPECT().Upgrade(gomock.Any(), usecase.UpgradeInput{Plan: entities.PlanFree}).
			Return(entities.SubscriptionState{}, &usecase.ValidationError{Field: "plan", Reason: "must be higher than the current plan"})

		w := performRequest(r, http.MethodPost, "/v1/account/subscription/upgrade", `{"plan":"free"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("yearly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAccountUseCase(ctrl)
		r := newAccountRouter(NewAccountHandler(uc))

		uc.EXPECT().Upgrade(gomock.Any(), usecase.UpgradeInput{Plan: entities.PlanProfessional, BillingCycle: entities.BillingCycleYearly}).
			Return(entities.SubscriptionState{Plan: entities.PlanProfessional, CommissionRate: 7.5}, nil)

		w := performRequest(r, http.MethodPost, "/v1/account/subscription/upgrade", `{"plan":"professional","billingCycle":"yearly"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAccountHandler_ListPlans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	r := newAccountRouter(NewAccountHandler(mocks.NewMockIAccountUseCase(ctrl)))

	w := performRequest(r, http.MethodGet, "/v1/plans", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Items []struct {
			Plan string `json:"plan"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 3 || body.Items[0].Plan != "free" || body.Items[2].Plan != "elite" {
		t.Fatalf("unexpected plans: %+v", body.Items)
	}
}

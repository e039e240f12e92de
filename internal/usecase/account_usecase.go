package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const minPasswordLength = 6

type ProfileInput struct {
	Email       string
	Role        entities.UserRole
	FirstName   string
	LastName    string
	Phone       string
	CompanyName string
	KvkNumber   string
	VatNumber   string
	Street      string
	PostalCode  string
	City        string
}

type SignUpInput struct {
	ProfileInput
	Password string
	Plan     entities.Plan
}

type UpgradeInput struct {
	Plan            entities.Plan
	BillingCycle    entities.BillingCycle
	PaymentMethodID string
	PayerEmail      string
}

type IAccountUseCase interface {
	Profile(ctx context.Context) (entities.UserProfile, error)
	SaveProfile(ctx context.Context, in ProfileInput) (entities.UserProfile, error)
	Subscription(ctx context.Context) (entities.SubscriptionState, error)
	Upgrade(ctx context.Context, in UpgradeInput) (entities.SubscriptionState, error)
	SignUp(ctx context.Context, in SignUpInput) (entities.UserProfile, error)
	SignIn(ctx context.Context, email, password string) (entities.Session, error)
}

type AccountUseCase struct {
	repo     interfaces.IAccountRepository
	identity interfaces.IIdentityProvider
	profiles interfaces.IProfileStore
	payments interfaces.IPaymentGateway
	events   interfaces.IEventPublisher
	log      *zap.Logger
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

// NewAccountUseCase wires the account rules. identity, profiles and payments
// may be nil; sign-up/sign-in then fail and upgrades are not charged.
func NewAccountUseCase(
	repo interfaces.IAccountRepository,
	identity interfaces.IIdentityProvider,
	profiles interfaces.IProfileStore,
	payments interfaces.IPaymentGateway,
	events interfaces.IEventPublisher,
	log *zap.Logger,
) *AccountUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountUseCase{repo: repo, identity: identity, profiles: profiles, payments: payments, events: events, log: log}
}

func (u *AccountUseCase) Profile(ctx context.Context) (entities.UserProfile, error) {
	p, err := u.repo.Profile(ctx)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.ID == "" {
		return entities.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *AccountUseCase) SaveProfile(ctx context.Context, in ProfileInput) (entities.UserProfile, error) {
	if err := validateProfileInput(in); err != nil {
		return entities.UserProfile{}, err
	}
	existing, err := u.repo.Profile(ctx)
	if err != nil {
		return entities.UserProfile{}, err
	}
	ts := now()
	p := profileFromInput(in)
	op := bus.OpUpdated
	if existing.ID == "" {
		p.ID = newID()
		p.CreatedAt = ts
		op = bus.OpCreated
	} else {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	}
	p.UpdatedAt = ts
	if err := u.repo.SaveProfile(ctx, p); err != nil {
		return entities.UserProfile{}, err
	}
	emit(u.events, bus.EntityProfile, op, p.ID, p)
	return p, nil
}

// Subscription returns the stored plan, or the free plan for users that never
// upgraded.
func (u *AccountUseCase) Subscription(ctx context.Context) (entities.SubscriptionState, error) {
	s, found, err := u.repo.Subscription(ctx)
	if err != nil {
		return entities.SubscriptionState{}, err
	}
	if !found {
		return entities.FreeSubscription(now()), nil
	}
	return s, nil
}

// Upgrade moves to a strictly higher plan, charging the first period through
// the payment gateway when one is configured.
func (u *AccountUseCase) Upgrade(ctx context.Context, in UpgradeInput) (entities.SubscriptionState, error) {
	terms, ok := entities.TermsFor(in.Plan)
	if !ok {
		return entities.SubscriptionState{}, invalid("plan", "unknown plan "+string(in.Plan))
	}
	if in.BillingCycle == "" {
		in.BillingCycle = entities.BillingCycleMonthly
	}
	if in.BillingCycle != entities.BillingCycleMonthly && in.BillingCycle != entities.BillingCycleYearly {
		return entities.SubscriptionState{}, invalid("billingCycle", "must be monthly or yearly")
	}
	current, err := u.Subscription(ctx)
	if err != nil {
		return entities.SubscriptionState{}, err
	}
	currentTerms, _ := entities.TermsFor(current.Plan)
	if terms.Rank <= currentTerms.Rank {
		return entities.SubscriptionState{}, transitionError("subscription", string(current.Plan), current.Plan, in.Plan)
	}

	ts := now()
	next := entities.SubscriptionState{
		Plan:           terms.Plan,
		CommissionRate: terms.CommissionRate,
		MonthlyPrice:   terms.MonthlyPrice,
		BillingCycle:   in.BillingCycle,
		StartedAt:      ts,
	}
	period := ts.AddDate(0, 1, 0)
	amount := terms.MonthlyPrice
	if in.BillingCycle == entities.BillingCycleYearly {
		period = ts.AddDate(1, 0, 0)
		amount = terms.MonthlyPrice * 12
	}
	next.NextBillingDate = period.Format("2006-01-02")

	if u.payments != nil && amount > 0 {
		paymentID, err := u.charge(ctx, in, amount.Float64())
		if err != nil {
			return entities.SubscriptionState{}, err
		}
		next.LastPaymentID = paymentID
	}

	if err := u.repo.SaveSubscription(ctx, next); err != nil {
		if next.LastPaymentID != "" {
			u.log.Error("payment charged but subscription not saved",
				zap.String("payment_id", next.LastPaymentID),
				zap.String("plan", string(next.Plan)),
				zap.Error(err),
			)
			return entities.SubscriptionState{}, fmt.Errorf("save subscription after payment %s: %w", next.LastPaymentID, err)
		}
		return entities.SubscriptionState{}, err
	}
	u.log.Info("subscription upgraded",
		zap.String("from", string(current.Plan)),
		zap.String("to", string(next.Plan)),
		zap.String("payment_id", next.LastPaymentID),
	)
	emit(u.events, bus.EntitySubscription, bus.OpUpdated, string(next.Plan), next)
	return next, nil
}

type paymentPayer struct {
	Email string `json:"email,omitempty"`
}

type paymentRequest struct {
	TransactionAmount float64      `json:"transaction_amount"`
	Description       string       `json:"description"`
	PaymentMethodID   string       `json:"payment_method_id,omitempty"`
	Installments      int          `json:"installments"`
	Payer             paymentPayer `json:"payer"`
}

func (u *AccountUseCase) charge(ctx context.Context, in UpgradeInput, amount float64) (string, error) {
	payload, err := json.Marshal(paymentRequest{
		TransactionAmount: amount,
		Description:       fmt.Sprintf("klusmarkt %s plan (%s)", in.Plan, in.BillingCycle),
		PaymentMethodID:   strings.TrimSpace(in.PaymentMethodID),
		Installments:      1,
		Payer:             paymentPayer{Email: strings.TrimSpace(in.PayerEmail)},
	})
	if err != nil {
		return "", err
	}
	id, status, _, err := u.payments.CreatePayment(ctx, payload)
	if err != nil {
		return "", &ExternalServiceError{Service: "payments", Tag: gatewayTag(err), Err: err}
	}
	if status != "approved" {
		return "", &ExternalServiceError{Service: "payments", Tag: TagUnknown, Message: "payment " + id + " is " + status}
	}
	return id, nil
}

// gatewayTag classifies Mercado Pago error bodies; only a rejected access
// token maps to a credential failure.
func gatewayTag(err error) ExternalTag {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`) {
		return TagInvalidCredentials
	}
	return TagUnknown
}

// SignUp registers the user with the identity provider, inserts the remote
// profile row and stores the local profile with a free subscription.
func (u *AccountUseCase) SignUp(ctx context.Context, in SignUpInput) (entities.UserProfile, error) {
	if err := validateProfileInput(in.ProfileInput); err != nil {
		return entities.UserProfile{}, err
	}
	if len(in.Password) < minPasswordLength {
		return entities.UserProfile{}, invalid("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if in.Plan == "" {
		in.Plan = entities.PlanFree
	}
	if _, ok := entities.TermsFor(in.Plan); !ok {
		return entities.UserProfile{}, invalid("plan", "unknown plan "+string(in.Plan))
	}
	if u.identity == nil {
		return entities.UserProfile{}, &ExternalServiceError{Service: "identity", Tag: TagUnknown, Message: "identity provider not configured"}
	}

	user, err := u.identity.SignUp(ctx, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return entities.UserProfile{}, asExternal("identity", err)
	}

	p := profileFromInput(in.ProfileInput)
	p.ID = user.ID
	if user.Email != "" {
		p.Email = user.Email
	}
	ts := now()
	p.CreatedAt, p.UpdatedAt = ts, ts

	if u.profiles != nil {
		row := entities.ProfileRow{
			ID:          p.ID,
			Email:       p.Email,
			Role:        p.Role,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Phone:       p.Phone,
			CompanyName: p.CompanyName,
			KvkNumber:   p.KvkNumber,
			Plan:        in.Plan,
		}
		if err := u.profiles.Insert(ctx, row); err != nil {
			return entities.UserProfile{}, asExternal("profiles", err)
		}
	}

	if err := u.repo.SaveAccount(ctx, p, entities.FreeSubscription(ts)); err != nil {
		return entities.UserProfile{}, err
	}
	u.log.Info("user signed up", zap.String("user_id", p.ID), zap.String("role", string(p.Role)))
	emit(u.events, bus.EntityProfile, bus.OpCreated, p.ID, p)
	return p, nil
}

func (u *AccountUseCase) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.Session{}, invalid("email", "malformed")
	}
	if password == "" {
		return entities.Session{}, invalid("password", "required")
	}
	if u.identity == nil {
		return entities.Session{}, &ExternalServiceError{Service: "identity", Tag: TagUnknown, Message: "identity provider not configured"}
	}
	session, err := u.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		return entities.Session{}, asExternal("identity", err)
	}
	return session, nil
}

// asExternal keeps an existing tag and classifies anything else as Unknown.
func asExternal(service string, err error) error {
	var ext *ExternalServiceError
	if errors.As(err, &ext) {
		return err
	}
	return &ExternalServiceError{Service: service, Tag: TagUnknown, Err: err}
}

func validateProfileInput(in ProfileInput) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return invalid("email", "malformed")
	}
	if in.Role != entities.UserRoleCustomer && in.Role != entities.UserRoleCraftsman {
		return invalid("role", "must be customer or craftsman")
	}
	if in.Role == entities.UserRoleCraftsman && strings.TrimSpace(in.CompanyName) == "" {
		return invalid("companyName", "required for craftsmen")
	}
	return nil
}

func profileFromInput(in ProfileInput) entities.UserProfile {
	return entities.UserProfile{
		Email:       strings.TrimSpace(in.Email),
		Role:        in.Role,
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Phone:       strings.TrimSpace(in.Phone),
		CompanyName: strings.TrimSpace(in.CompanyName),
		KvkNumber:   strings.TrimSpace(in.KvkNumber),
		VatNumber:   strings.TrimSpace(in.VatNumber),
		Street:      strings.TrimSpace(in.Street),
		PostalCode:  strings.TrimSpace(in.PostalCode),
		City:        strings.TrimSpace(in.City),
	}
}

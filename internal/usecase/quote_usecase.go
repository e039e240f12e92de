package usecase

import (
	"context"
	"fmt"
	"strings"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
	"klusmarkt/internal/domain/projections"
	"klusmarkt/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MaxInstallments bounds RecordPayment schedules.
const MaxInstallments = 4

// QuoteDraft is a craftsman's quote submission. A nil CommissionRate takes the
// rate of the current subscription plan.
type QuoteDraft struct {
	JobID          string
	Craftsman      entities.CraftsmanRef
	Description    string
	ProposedAmount money.Amount
	CommissionRate *float64
}

// QuotePatch edits a pending quote; nil means unchanged.
type QuotePatch struct {
	Description    *string
	ProposedAmount *money.Amount
	CommissionRate *float64
}

type AcceptanceInput struct {
	CustomerName string
	Signature    string
	Notes        string
}

type IQuoteUseCase interface {
	List(ctx context.Context) ([]entities.Quote, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Quote, error)
	FindByID(ctx context.Context, id string) (entities.Quote, error)
	Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error)
	Update(ctx context.Context, id string, patch QuotePatch) (entities.Quote, error)
	Remove(ctx context.Context, id string) error
	Accept(ctx context.Context, id string, in AcceptanceInput) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	RecordPayment(ctx context.Context, id, method string, installments int) (entities.Quote, error)
	MarkInstallmentPaid(ctx context.Context, id string, number int) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	accounts interfaces.IAccountRepository
	events   interfaces.IEventPublisher
	log      *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, accounts interfaces.IAccountRepository, events interfaces.IEventPublisher, log *zap.Logger) *QuoteUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{repo: repo, accounts: accounts, events: events, log: log}
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.Quote, error) {
	jobID, err := requireID("jobId", jobID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *QuoteUseCase) FindByID(ctx context.Context, id string) (entities.Quote, error) {
	id, err := requireID("id", id)
	if err != nil {
		return entities.Quote{}, err
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Create(ctx context.Context, draft QuoteDraft) (entities.Quote, error) {
	jobID, err := requireID("jobId", draft.JobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if strings.TrimSpace(draft.Craftsman.ID) == "" {
		return entities.Quote{}, invalid("craftsman.id", "required")
	}
	if draft.ProposedAmount < 0 {
		return entities.Quote{}, invalid("proposedAmount", "must not be negative")
	}
	rate, err := u.commissionRate(ctx, draft.CommissionRate)
	if err != nil {
		return entities.Quote{}, err
	}

	ts := now()
	id := newID()
	q := entities.Quote{
		ID:              id,
		InvoiceNumber:   invoiceNumber(ts.Format("20060102"), id),
		JobID:           jobID,
		Craftsman:       draft.Craftsman,
		Description:     strings.TrimSpace(draft.Description),
		ProposedAmount:  draft.ProposedAmount,
		Status:          entities.QuoteStatusPending,
		ApplicationDate: ts,
		UpdatedAt:       ts,
	}
	applyBreakdown(&q, rate)

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote created",
		zap.String("quote_id", created.ID),
		zap.String("job_id", created.JobID),
		zap.Stringer("amount", created.ProposedAmount),
		zap.Float64("commission_rate", created.CommissionRate),
	)
	emit(u.events, bus.EntityQuotes, bus.OpCreated, created.ID, created)
	return created, nil
}

// commissionRate validates an explicit rate or falls back to the plan's rate.
func (u *QuoteUseCase) commissionRate(ctx context.Context, explicit *float64) (float64, error) {
	if explicit != nil {
		if !entities.AllowedCommissionRate(*explicit) {
			return 0, invalid("commissionRate", fmt.Sprintf("%v is not a plan rate", *explicit))
		}
		return *explicit, nil
	}
	if u.accounts == nil {
		return entities.FreeSubscription(now()).CommissionRate, nil
	}
	sub, found, err := u.accounts.Subscription(ctx)
	if err != nil {
		return 0, err
	}
	if !found || !entities.AllowedCommissionRate(sub.CommissionRate) {
		return entities.FreeSubscription(now()).CommissionRate, nil
	}
	return sub.CommissionRate, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, id string, patch QuotePatch) (entities.Quote, error) {
	if patch.ProposedAmount != nil && *patch.ProposedAmount < 0 {
		return entities.Quote{}, invalid("proposedAmount", "must not be negative")
	}
	if patch.CommissionRate != nil && !entities.AllowedCommissionRate(*patch.CommissionRate) {
		return entities.Quote{}, invalid("commissionRate", fmt.Sprintf("%v is not a plan rate", *patch.CommissionRate))
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		if q.Status != entities.QuoteStatusPending {
			return transitionError("quote", q.ID, q.Status, "edited")
		}
		if patch.Description != nil {
			q.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.ProposedAmount != nil {
			q.ProposedAmount = *patch.ProposedAmount
		}
		rate := q.CommissionRate
		if patch.CommissionRate != nil {
			rate = *patch.CommissionRate
		}
		applyBreakdown(q, rate)
		return nil
	})
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string, in AcceptanceInput) (entities.Quote, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return entities.Quote{}, invalid("customerName", "required")
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		if !q.CanTransition(entities.QuoteStatusAccepted) {
			return transitionError("quote", q.ID, q.Status, entities.QuoteStatusAccepted)
		}
		q.Status = entities.QuoteStatusAccepted
		q.CustomerAcceptance = &entities.CustomerAcceptance{
			AcceptedAt:   now(),
			CustomerName: name,
			Signature:    in.Signature,
			Notes:        strings.TrimSpace(in.Notes),
		}
		return nil
	})
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		if !q.CanTransition(entities.QuoteStatusRejected) {
			return transitionError("quote", q.ID, q.Status, entities.QuoteStatusRejected)
		}
		q.Status = entities.QuoteStatusRejected
		return nil
	})
}

// RecordPayment attaches the payment plan of an accepted quote. installments=1
// is a single payment due now.
func (u *QuoteUseCase) RecordPayment(ctx context.Context, id, method string, installments int) (entities.Quote, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return entities.Quote{}, invalid("method", "required")
	}
	if installments < 1 || installments > MaxInstallments {
		return entities.Quote{}, invalid("installments", fmt.Sprintf("must be between 1 and %d", MaxInstallments))
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		if q.Status != entities.QuoteStatusAccepted {
			return transitionError("quote", q.ID, q.Status, "paid")
		}
		if q.Payment != nil && q.Payment.Status != entities.PaymentStatusUnpaid {
			return transitionError("payment of quote", q.ID, q.Payment.Status, "rescheduled")
		}
		ts := now()
		var plan []entities.Installment
		if installments == 1 {
			plan = []entities.Installment{{Number: 1, Amount: q.ProposedAmount, DueDate: ts.Format(projections.DateLayout)}}
		} else {
			var err error
			plan, err = projections.InstallmentSchedule(q.ProposedAmount, installments, ts)
			if err != nil {
				return invalid("installments", err.Error())
			}
		}
		q.Payment = &entities.Payment{
			Method:       method,
			Status:       entities.PaymentStatusUnpaid,
			Installments: plan,
			UpdatedAt:    ts,
		}
		return nil
	})
}

func (u *QuoteUseCase) MarkInstallmentPaid(ctx context.Context, id string, number int) (entities.Quote, error) {
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		if q.Payment == nil {
			return transitionError("quote", q.ID, "without payment plan", "paid")
		}
		idx := -1
		for i, inst := range q.Payment.Installments {
			if inst.Number == number {
				idx = i
				break
			}
		}
		if idx < 0 {
			return invalid("installment", fmt.Sprintf("no installment %d", number))
		}
		inst := &q.Payment.Installments[idx]
		if inst.Paid {
			return transitionError("installment", fmt.Sprint(number), "paid", "paid")
		}
		ts := now()
		inst.Paid = true
		inst.PaidAt = &ts
		q.Payment.Status = paymentStatus(q.Payment.Installments)
		q.Payment.UpdatedAt = ts
		return nil
	})
}

func (u *QuoteUseCase) mutate(ctx context.Context, id string, fn func(*entities.Quote) error) (entities.Quote, error) {
	id, err := requireID("id", id)
	if err != nil {
		return entities.Quote{}, err
	}
	updated, err := u.repo.Update(ctx, id, func(q *entities.Quote) error {
		if err := fn(q); err != nil {
			return err
		}
		q.UpdatedAt = now()
		return nil
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.log.Info("quote updated", zap.String("quote_id", updated.ID), zap.String("status", string(updated.Status)))
	emit(u.events, bus.EntityQuotes, bus.OpUpdated, updated.ID, updated)
	return updated, nil
}

func (u *QuoteUseCase) Remove(ctx context.Context, id string) error {
	id, err := requireID("id", id)
	if err != nil {
		return err
	}
	removed, err := u.repo.Delete(ctx, id, func(q entities.Quote) error {
		if q.Status == entities.QuoteStatusAccepted {
			return transitionError("quote", q.ID, q.Status, "removed")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if removed.ID == "" {
		return ErrQuoteNotFound
	}
	u.log.Info("quote removed", zap.String("quote_id", id))
	emit(u.events, bus.EntityQuotes, bus.OpDeleted, id, nil)
	return nil
}

func applyBreakdown(q *entities.Quote, rate float64) {
	b := projections.CommissionBreakdown(q.ProposedAmount, rate)
	q.CommissionRate = b.CommissionRate
	q.CommissionAmount = b.CommissionAmount
	q.NetAmount = b.NetAmount
}

func paymentStatus(plan []entities.Installment) entities.PaymentStatus {
	paid := 0
	for _, inst := range plan {
		if inst.Paid {
			paid++
		}
	}
	switch {
	case paid == 0:
		return entities.PaymentStatusUnpaid
	case paid == len(plan):
		return entities.PaymentStatusPaid
	default:
		return entities.PaymentStatusPartiallyPaid
	}
}

// invoiceNumber is INV-YYYYMMDD-XXXXXX, the suffix taken from the quote id.
func invoiceNumber(day, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return "INV-" + day + "-" + suffix
}

package usecase

import (
	"context"
	"strings"
	"time"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
	"klusmarkt/internal/domain/projections"
	"klusmarkt/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type AgendaDraft struct {
	Title             string
	ClientName        string
	ClientPhone       string
	ClientEmail       string
	Location          string
	Date              string
	StartTime         string
	EndTime           string
	Amount            money.Amount
	CommissionRate    float64
	JobType           string
	EstimatedDuration string
	Notes             string
}

// AgendaPatch edits a non-terminal item; nil means unchanged.
type AgendaPatch struct {
	Title             *string
	ClientName        *string
	ClientPhone       *string
	ClientEmail       *string
	Location          *string
	Date              *string
	StartTime         *string
	EndTime           *string
	Amount            *money.Amount
	JobType           *string
	EstimatedDuration *string
	Notes             *string
}

type IAgendaUseCase interface {
	List(ctx context.Context) ([]entities.AgendaItem, error)
	FindByID(ctx context.Context, id string) (entities.AgendaItem, error)
	Create(ctx context.Context, draft AgendaDraft) (entities.AgendaItem, error)
	CreateFromQuote(ctx context.Context, quoteID, date, startTime, endTime string) (entities.AgendaItem, error)
	Update(ctx context.Context, id string, patch AgendaPatch) (entities.AgendaItem, error)
	Remove(ctx context.Context, id string) error
	Start(ctx context.Context, id string) (entities.AgendaItem, error)
	Complete(ctx context.Context, id string) (entities.AgendaItem, error)
	Cancel(ctx context.Context, id string) (entities.AgendaItem, error)
	Upcoming(ctx context.Context, from time.Time, horizonDays int) ([]entities.AgendaItem, error)
}

type AgendaUseCase struct {
	repo   interfaces.IAgendaRepository
	quotes interfaces.IQuoteRepository
	events interfaces.IEventPublisher
	log    *zap.Logger
}

var _ IAgendaUseCase = (*AgendaUseCase)(nil)

func NewAgendaUseCase(repo interfaces.IAgendaRepository, quotes interfaces.IQuoteRepository, events interfaces.IEventPublisher, log *zap.Logger) *AgendaUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AgendaUseCase{repo: repo, quotes: quotes, events: events, log: log}
}

func (u *AgendaUseCase) List(ctx context.Context) ([]entities.AgendaItem, error) {
	return u.repo.List(ctx)
}

func (u *AgendaUseCase) FindByID(ctx context.Context, id string) (entities.AgendaItem, error) {
	id, err := requireID("id", id)
	if err != nil {
		return entities.AgendaItem{}, err
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AgendaItem{}, err
	}
	if item.ID == "" {
		return entities.AgendaItem{}, ErrAgendaItemNotFound
	}
	return item, nil
}

func (u *AgendaUseCase) Create(ctx context.Context, d AgendaDraft) (entities.AgendaItem, error) {
	ts := now()
	item := entities.AgendaItem{
		ID:                newID(),
		Title:             strings.TrimSpace(d.Title),
		ClientName:        strings.TrimSpace(d.ClientName),
		ClientPhone:       strings.TrimSpace(d.ClientPhone),
		ClientEmail:       strings.TrimSpace(d.ClientEmail),
		Location:          strings.TrimSpace(d.Location),
		Date:              strings.TrimSpace(d.Date),
		StartTime:         strings.TrimSpace(d.StartTime),
		EndTime:           strings.TrimSpace(d.EndTime),
		Status:            entities.AgendaStatusScheduled,
		Amount:            d.Amount,
		CommissionRate:    d.CommissionRate,
		JobType:           strings.TrimSpace(d.JobType),
		EstimatedDuration: strings.TrimSpace(d.EstimatedDuration),
		Notes:             strings.TrimSpace(d.Notes),
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
	return u.create(ctx, item)
}

// CreateFromQuote schedules the work of an accepted quote. A quote is
// scheduled at most once.
func (u *AgendaUseCase) CreateFromQuote(ctx context.Context, quoteID, date, startTime, endTime string) (entities.AgendaItem, error) {
	quoteID, err := requireID("quoteId", quoteID)
	if err != nil {
		return entities.AgendaItem{}, err
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.AgendaItem{}, err
	}
	if q.ID == "" {
		return entities.AgendaItem{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.AgendaItem{}, transitionError("quote", q.ID, q.Status, "scheduled")
	}
	items, err := u.repo.List(ctx)
	if err != nil {
		return entities.AgendaItem{}, err
	}
	for _, it := range items {
		if it.QuoteID == q.ID && it.Status != entities.AgendaStatusCancelled {
			return entities.AgendaItem{}, transitionError("quote", q.ID, "scheduled", "scheduled")
		}
	}

	title := q.Description
	if title == "" {
		title = "Job " + q.InvoiceNumber
	}
	clientName := ""
	if q.CustomerAcceptance != nil {
		clientName = q.CustomerAcceptance.CustomerName
	}
	ts := now()
	item := entities.AgendaItem{
		ID:             newID(),
		Title:          title,
		ClientName:     clientName,
		Date:           strings.TrimSpace(date),
		StartTime:      strings.TrimSpace(startTime),
		EndTime:        strings.TrimSpace(endTime),
		Status:         entities.AgendaStatusScheduled,
		Amount:         q.ProposedAmount,
		CommissionRate: q.CommissionRate,
		QuoteID:        q.ID,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	return u.create(ctx, item)
}

func (u *AgendaUseCase) create(ctx context.Context, item entities.AgendaItem) (entities.AgendaItem, error) {
	if err := validateAgendaItem(item); err != nil {
		return entities.AgendaItem{}, err
	}
	created, err := u.repo.Create(ctx, item)
	if err != nil {
		return entities.AgendaItem{}, err
	}
	u.log.Info("agenda item created", zap.String("agenda_id", created.ID), zap.String("date", created.Date))
	emit(u.events, bus.EntityAgenda, bus.OpCreated, created.ID, created)
	return created, nil
}

func (u *AgendaUseCase) Update(ctx context.Context, id string, p AgendaPatch) (entities.AgendaItem, error) {
	return u.mutate(ctx, id, func(item *entities.AgendaItem) error {
		if item.Status.Terminal() {
			return transitionError("agenda item", item.ID, item.Status, "edited")
		}
		applyAgendaPatch(item, p)
		return validateAgendaItem(*item)
	})
}

func (u *AgendaUseCase) Start(ctx context.Context, id string) (entities.AgendaItem, error) {
	return u.transition(ctx, id, entities.AgendaStatusInProgress)
}

func (u *AgendaUseCase) Complete(ctx context.Context, id string) (entities.AgendaItem, error) {
	return u.transition(ctx, id, entities.AgendaStatusCompleted)
}

func (u *AgendaUseCase) Cancel(ctx context.Context, id string) (entities.AgendaItem, error) {
	return u.transition(ctx, id, entities.AgendaStatusCancelled)
}

func (u *AgendaUseCase) transition(ctx context.Context, id string, next entities.AgendaStatus) (entities.AgendaItem, error) {
	return u.mutate(ctx, id, func(item *entities.AgendaItem) error {
		if !item.CanTransition(next) {
			return transitionError("agenda item", item.ID, item.Status, next)
		}
		item.Status = next
		return nil
	})
}

func (u *AgendaUseCase) mutate(ctx context.Context, id string, fn func(*entities.AgendaItem) error) (entities.AgendaItem, error) {
	id, err := requireID("id", id)
	if err != nil {
		return entities.AgendaItem{}, err
	}
	updated, err := u.repo.Update(ctx, id, func(item *entities.AgendaItem) error {
		if err := fn(item); err != nil {
			return err
		}
		item.UpdatedAt = now()
		return nil
	})
	if err != nil {
		return entities.AgendaItem{}, err
	}
	if updated.ID == "" {
		return entities.AgendaItem{}, ErrAgendaItemNotFound
	}
	emit(u.events, bus.EntityAgenda, bus.OpUpdated, updated.ID, updated)
	return updated, nil
}

func (u *AgendaUseCase) Remove(ctx context.Context, id string) error {
	id, err := requireID("id", id)
	if err != nil {
		return err
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed.ID == "" {
		return ErrAgendaItemNotFound
	}
	emit(u.events, bus.EntityAgenda, bus.OpDeleted, id, nil)
	return nil
}

func (u *AgendaUseCase) Upcoming(ctx context.Context, from time.Time, horizonDays int) ([]entities.AgendaItem, error) {
	if horizonDays < 0 {
		return nil, invalid("horizonDays", "must not be negative")
	}
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return projections.UpcomingAgenda(items, from, horizonDays), nil
}

func applyAgendaPatch(item *entities.AgendaItem, p AgendaPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&item.Title, p.Title)
	set(&item.ClientName, p.ClientName)
	set(&item.ClientPhone, p.ClientPhone)
	set(&item.ClientEmail, p.ClientEmail)
	set(&item.Location, p.Location)
	set(&item.Date, p.Date)
	set(&item.StartTime, p.StartTime)
	set(&item.EndTime, p.EndTime)
	set(&item.JobType, p.JobType)
	set(&item.EstimatedDuration, p.EstimatedDuration)
	set(&item.Notes, p.Notes)
	if p.Amount != nil {
		item.Amount = *p.Amount
	}
}

func validateAgendaItem(it entities.AgendaItem) error {
	if it.Title == "" {
		return invalid("title", "required")
	}
	if _, err := projections.ParseDate(it.Date); err != nil {
		return invalid("date", "expected YYYY-MM-DD")
	}
	var start, end int
	var err error
	if it.StartTime != "" {
		if start, err = projections.ParseClock(it.StartTime); err != nil {
			return invalid("startTime", "expected HH:MM")
		}
	}
	if it.EndTime != "" {
		if end, err = projections.ParseClock(it.EndTime); err != nil {
			return invalid("endTime", "expected HH:MM")
		}
	}
	if it.StartTime != "" && it.EndTime != "" && start >= end {
		return invalid("endTime", "must be after startTime")
	}
	if it.Amount < 0 {
		return invalid("amount", "must not be negative")
	}
	if it.CommissionRate != 0 && !entities.AllowedCommissionRate(it.CommissionRate) {
		return invalid("commissionRate", "not a plan rate")
	}
	return nil
}

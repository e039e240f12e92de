package usecase

import (
	"context"
	"sort"
	"time"

	"klusmarkt/internal/bus"
	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/projections"
	"klusmarkt/internal/usecase/interfaces"
)

const (
	minSlotMinutes = 15
	maxSlotMinutes = 8 * 60
)

type IAvailabilityUseCase interface {
	Get(ctx context.Context) (entities.AvailabilitySettings, error)
	Save(ctx context.Context, s entities.AvailabilitySettings) (entities.AvailabilitySettings, error)
	Slots(ctx context.Context, date string) ([]projections.Slot, error)
}

type AvailabilityUseCase struct {
	repo   interfaces.IAvailabilityRepository
	agenda interfaces.IAgendaRepository
	events interfaces.IEventPublisher
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(repo interfaces.IAvailabilityRepository, agenda interfaces.IAgendaRepository, events interfaces.IEventPublisher) *AvailabilityUseCase {
	return &AvailabilityUseCase{repo: repo, agenda: agenda, events: events}
}

// Get returns the saved settings, or the defaults when none were saved.
func (u *AvailabilityUseCase) Get(ctx context.Context) (entities.AvailabilitySettings, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.AvailabilitySettings{}, err
	}
	if !found {
		return entities.DefaultAvailability(), nil
	}
	return s, nil
}

func (u *AvailabilityUseCase) Save(ctx context.Context, s entities.AvailabilitySettings) (entities.AvailabilitySettings, error) {
	if s.SlotMinutes == 0 {
		s.SlotMinutes = entities.DefaultAvailability().SlotMinutes
	}
	days, err := normalizeWorkingDays(s.WorkingDays)
	if err != nil {
		return entities.AvailabilitySettings{}, err
	}
	s.WorkingDays = days
	if err := validateAvailability(s); err != nil {
		return entities.AvailabilitySettings{}, err
	}
	s.UpdatedAt = now()
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.AvailabilitySettings{}, err
	}
	emit(u.events, bus.EntityAvailability, bus.OpUpdated, "", s)
	return s, nil
}

// Slots lists the free slots of date (YYYY-MM-DD) given the current agenda.
func (u *AvailabilityUseCase) Slots(ctx context.Context, date string) ([]projections.Slot, error) {
	day, err := projections.ParseDate(date)
	if err != nil {
		return nil, invalid("date", "expected YYYY-MM-DD")
	}
	settings, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	items, err := u.agenda.List(ctx)
	if err != nil {
		return nil, err
	}
	return projections.AvailableSlots(settings, items, day), nil
}

func normalizeWorkingDays(days []int) ([]int, error) {
	seen := map[int]bool{}
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < int(time.Sunday) || d > int(time.Saturday) {
			return nil, invalid("workingDays", "weekday must be 0..6")
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out, nil
}

func validateAvailability(s entities.AvailabilitySettings) error {
	open, err := projections.ParseClock(s.WorkingHours.Start)
	if err != nil {
		return invalid("workingHours.start", "expected HH:MM")
	}
	closing, err := projections.ParseClock(s.WorkingHours.End)
	if err != nil {
		return invalid("workingHours.end", "expected HH:MM")
	}
	if open >= closing {
		return invalid("workingHours", "start must be before end")
	}
	if s.BreakTime != nil {
		bs, err := projections.ParseClock(s.BreakTime.Start)
		if err != nil {
			return invalid("breakTime.start", "expected HH:MM")
		}
		be, err := projections.ParseClock(s.BreakTime.End)
		if err != nil {
			return invalid("breakTime.end", "expected HH:MM")
		}
		if bs >= be {
			return invalid("breakTime", "start must be before end")
		}
		if bs < open || be > closing {
			return invalid("breakTime", "must fall within working hours")
		}
	}
	if s.SlotMinutes < minSlotMinutes || s.SlotMinutes > maxSlotMinutes {
		return invalid("slotMinutes", "must be between 15 and 480")
	}
	return nil
}

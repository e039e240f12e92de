package projections

import (
	"time"

	"klusmarkt/internal/domain/entities"
)

// Slot is a bookable interval on one date, [Start, End) in HH:MM.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type interval struct{ start, end int }

func (a interval) overlaps(b interval) bool {
	return a.start < b.end && b.start < a.end
}

// AvailableSlots lists the free slots of settings.SlotMinutes between the
// working hours of date. Slots touching the break or any non-cancelled agenda
// item on that date are dropped. Non-working days yield an empty slice.
func AvailableSlots(settings entities.AvailabilitySettings, items []entities.AgendaItem, date time.Time) []Slot {
	slots := []Slot{}
	if !settings.WorksOn(date.Weekday()) {
		return slots
	}
	step := settings.SlotMinutes
	if step <= 0 {
		step = 60
	}
	open, err := ParseClock(settings.WorkingHours.Start)
	if err != nil {
		return slots
	}
	closing, err := ParseClock(settings.WorkingHours.End)
	if err != nil || closing <= open {
		return slots
	}

	var busy []interval
	if settings.BreakTime != nil {
		bs, errS := ParseClock(settings.BreakTime.Start)
		be, errE := ParseClock(settings.BreakTime.End)
		if errS == nil && errE == nil && bs < be {
			busy = append(busy, interval{bs, be})
		}
	}
	day := date.Format(DateLayout)
	for _, it := range items {
		if it.Date != day || it.Status == entities.AgendaStatusCancelled {
			continue
		}
		s, errS := ParseClock(it.StartTime)
		e, errE := ParseClock(it.EndTime)
		if errS != nil || errE != nil || s >= e {
			continue
		}
		busy = append(busy, interval{s, e})
	}

	for t := open; t+step <= closing; t += step {
		candidate := interval{t, t + step}
		free := true
		for _, b := range busy {
			if candidate.overlaps(b) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, Slot{Start: FormatClock(candidate.start), End: FormatClock(candidate.end)})
		}
	}
	return slots
}

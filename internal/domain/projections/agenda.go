package projections

import (
	"sort"
	"time"

	"klusmarkt/internal/domain/entities"
)

// UpcomingAgenda returns the scheduled or running items whose date falls in
// [from, from+horizonDays), ordered by (date, startTime). Items with an
// unparseable date are skipped. The input slice is not modified.
func UpcomingAgenda(items []entities.AgendaItem, from time.Time, horizonDays int) []entities.AgendaItem {
	if horizonDays <= 0 {
		return []entities.AgendaItem{}
	}
	start := dateOnly(from)
	end := start.AddDate(0, 0, horizonDays)

	out := make([]entities.AgendaItem, 0, len(items))
	for _, it := range items {
		if it.Status.Terminal() {
			continue
		}
		d, err := ParseDate(it.Date)
		if err != nil {
			continue
		}
		if d.Before(start) || !d.Before(end) {
			continue
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

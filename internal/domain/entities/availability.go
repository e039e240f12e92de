package entities

import "time"

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilitySettings is the craftsman's working pattern, stored as a single
// object under "availabilitySettings". Only read by slot projections.
type AvailabilitySettings struct {
	WorkingDays  []int      `json:"workingDays"`
	WorkingHours TimeRange  `json:"workingHours"`
	BreakTime    *TimeRange `json:"breakTime,omitempty"`
	SlotMinutes  int        `json:"slotMinutes"`
	UpdatedAt    time.Time  `json:"updatedAt,omitempty"`
}

// DefaultAvailability is used until the craftsman saves their own settings.
func DefaultAvailability() AvailabilitySettings {
	return AvailabilitySettings{
		WorkingDays:  []int{1, 2, 3, 4, 5},
		WorkingHours: TimeRange{Start: "08:00", End: "17:00"},
		BreakTime:    &TimeRange{Start: "12:00", End: "13:00"},
		SlotMinutes:  60,
	}
}

func (s AvailabilitySettings) WorksOn(day time.Weekday) bool {
	for _, d := range s.WorkingDays {
		if time.Weekday(d) == day {
			return true
		}
	}
	return false
}

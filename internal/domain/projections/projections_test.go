package projections

import (
	"testing"
	"time"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func TestCommissionBreakdown(t *testing.T) {
	t.Run("scenario 3500 at 15%", func(t *testing.T) {
		b := CommissionBreakdown(money.FromMajor(3500), 15)
		assert.Equal(t, money.FromFloat(525.00), b.CommissionAmount)
		assert.Equal(t, money.FromFloat(2975.00), b.NetAmount)
	})

	t.Run("no rounding drift", func(t *testing.T) {
		for _, rate := range []float64{15, 7.5, 5} {
			for cents := money.Amount(0); cents <= 100000; cents += 137 {
				b := CommissionBreakdown(cents, rate)
				require.Equal(t, cents, b.CommissionAmount+b.NetAmount, "amount %s rate %v", cents, rate)
				require.GreaterOrEqual(t, int64(b.NetAmount), int64(0))
			}
		}
	})
}

func TestInstallmentSchedule(t *testing.T) {
	t.Run("1000 in three", func(t *testing.T) {
		got, err := InstallmentSchedule(money.FromMajor(1000), 3, monday)
		require.NoError(t, err)
		want := []entities.Installment{
			{Number: 1, Amount: money.FromMajor(333), DueDate: "2026-11-18"},
			{Number: 2, Amount: money.FromMajor(333), DueDate: "2026-12-18"},
			{Number: 3, Amount: money.FromMajor(334), DueDate: "2027-01-17"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("schedule mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sum equals total", func(t *testing.T) {
		for _, n := range []int{2, 3, 4} {
			for total := money.Amount(0); total <= 500000; total += 3337 {
				got, err := InstallmentSchedule(total, n, monday)
				require.NoError(t, err)
				require.Len(t, got, n)
				var sum money.Amount
				for _, inst := range got {
					sum += inst.Amount
				}
				require.Equal(t, total, sum, "total %s n %d", total, n)
			}
		}
	})

	t.Run("total below n units", func(t *testing.T) {
		got, err := InstallmentSchedule(money.FromMajor(2), 3, monday)
		require.NoError(t, err)
		amounts := []money.Amount{got[0].Amount, got[1].Amount, got[2].Amount}
		require.Equal(t, []money.Amount{0, 0, money.FromMajor(2)}, amounts)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := InstallmentSchedule(100, 0, monday)
		require.ErrorIs(t, err, ErrInvalidSchedule)
		_, err = InstallmentSchedule(-1, 2, monday)
		require.ErrorIs(t, err, ErrInvalidSchedule)
	})
}

func TestUpcomingAgenda(t *testing.T) {
	items := []entities.AgendaItem{
		{ID: "late", Date: "2026-10-21", StartTime: "14:00", Status: entities.AgendaStatusScheduled},
		{ID: "past", Date: "2026-10-18", StartTime: "09:00", Status: entities.AgendaStatusScheduled},
		{ID: "early", Date: "2026-10-21", StartTime: "08:00", Status: entities.AgendaStatusScheduled},
		{ID: "today", Date: "2026-10-19", StartTime: "16:00", Status: entities.AgendaStatusInProgress},
		{ID: "cancelled", Date: "2026-10-20", StartTime: "10:00", Status: entities.AgendaStatusCancelled},
		{ID: "horizon", Date: "2026-10-26", StartTime: "10:00", Status: entities.AgendaStatusScheduled},
		{ID: "garbage", Date: "21-10-2026", Status: entities.AgendaStatusScheduled},
	}

	got := UpcomingAgenda(items, monday, 7)
	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"today", "early", "late"}, ids)
	assert.Equal(t, "late", items[0].ID, "input must not be reordered")

	assert.Empty(t, UpcomingAgenda(items, monday, 0))
}

func TestAvailableSlots(t *testing.T) {
	settings := entities.DefaultAvailability()

	t.Run("non working day", func(t *testing.T) {
		assert.Empty(t, AvailableSlots(settings, nil, monday.AddDate(0, 0, -1)))
	})

	t.Run("break and bookings excluded", func(t *testing.T) {
		items := []entities.AgendaItem{
			{Date: "2026-10-19", StartTime: "09:30", EndTime: "10:15", Status: entities.AgendaStatusScheduled},
			{Date: "2026-10-19", StartTime: "14:00", EndTime: "15:00", Status: entities.AgendaStatusCancelled},
			{Date: "2026-10-20", StartTime: "08:00", EndTime: "17:00", Status: entities.AgendaStatusScheduled},
		}
		got := AvailableSlots(settings, items, monday)
		want := []Slot{
			{"08:00", "09:00"},
			{"11:00", "12:00"},
			{"13:00", "14:00"},
			{"14:00", "15:00"},
			{"15:00", "16:00"},
			{"16:00", "17:00"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("never overlaps bookings", func(t *testing.T) {
		settings := settings
		settings.SlotMinutes = 15
		items := []entities.AgendaItem{
			{Date: "2026-10-19", StartTime: "08:10", EndTime: "08:50", Status: entities.AgendaStatusScheduled},
			{Date: "2026-10-19", StartTime: "15:45", EndTime: "16:05", Status: entities.AgendaStatusInProgress},
		}
		for _, s := range AvailableSlots(settings, items, monday) {
			start, _ := ParseClock(s.Start)
			end, _ := ParseClock(s.End)
			for _, it := range items {
				bs, _ := ParseClock(it.StartTime)
				be, _ := ParseClock(it.EndTime)
				require.False(t, start < be && bs < end, "slot %v overlaps %s-%s", s, it.StartTime, it.EndTime)
			}
		}
	})
}

func TestListingAndFeed(t *testing.T) {
	lo, hi := money.FromMajor(1500), money.FromMajor(3000)
	job := entities.Job{
		ID:          "job-1",
		Title:       "Bathroom",
		Category:    entities.JobCategoryRenovation,
		Description: "Complete bathroom renovation",
		Location:    entities.Location{City: "Utrecht", Latitude: 52.0907, Longitude: 5.1214},
		Budget:      entities.Budget{Min: &lo, Max: &hi, Currency: money.DefaultCurrency},
		Status:      entities.JobStatusActive,
		Images:      []string{"a.jpg", "b.jpg"},
		OwnerID:     "cust-1",
	}
	published := monday.Add(-3 * time.Hour)
	l := ListingFromJob(job, published)
	assert.Equal(t, "job-1", l.JobID)
	assert.Equal(t, 2, l.ImageCount)
	assert.Equal(t, "a.jpg", l.Thumbnail)
	assert.Equal(t, hi, *l.Budget.Max)

	filled := l
	filled.ID, filled.Status = "job-2", entities.JobStatusFilled

	viewer := &entities.Location{Latitude: 52.3676, Longitude: 4.9041}
	feed := Feed([]entities.PublicJobListing{l, filled}, viewer, monday)
	require.Len(t, feed, 1)
	assert.Equal(t, "3 hours ago", feed[0].PostedAgo)
	require.NotNil(t, feed[0].DistanceKm)
	assert.InDelta(t, 34.6, *feed[0].DistanceKm, 1.5)
	assert.Empty(t, l.PostedAgo, "projection input must not be mutated")
}

func TestPostedAgo(t *testing.T) {
	assert.Equal(t, "just now", PostedAgo(10*time.Second))
	assert.Equal(t, "1 minute ago", PostedAgo(time.Minute))
	assert.Equal(t, "2 days ago", PostedAgo(49*time.Hour))
}

package projections

import (
	"fmt"
	"math"
	"strings"
	"time"

	"klusmarkt/internal/domain/entities"
)

const previewRunes = 160

// ListingFromJob projects job into its public feed shape. publishedAt is kept
// from the first publication so refreshes do not bump the job in the feed.
func ListingFromJob(job entities.Job, publishedAt time.Time) entities.PublicJobListing {
	l := entities.PublicJobListing{
		ID:                 job.ID,
		JobID:              job.ID,
		Title:              job.Title,
		Category:           job.Category,
		DescriptionPreview: preview(job.Description),
		City:               job.Location.City,
		PostalCode:         job.Location.PostalCode,
		Latitude:           job.Location.Latitude,
		Longitude:          job.Location.Longitude,
		Budget:             job.Budget,
		StartDate:          job.Timing.StartDate,
		Status:             job.Status,
		ImageCount:         len(job.Images),
		OwnerID:            job.OwnerID,
		PublishedAt:        publishedAt,
		UpdatedAt:          job.UpdatedAt,
	}
	if len(job.Images) > 0 {
		l.Thumbnail = job.Images[0]
	}
	return l
}

func preview(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= previewRunes {
		return s
	}
	return strings.TrimSpace(string(r[:previewRunes-1])) + "…"
}

// Feed fills the viewer-dependent fields of active listings, newest first.
// viewer may be nil, in which case DistanceKm stays empty.
func Feed(listings []entities.PublicJobListing, viewer *entities.Location, now time.Time) []entities.PublicJobListing {
	out := make([]entities.PublicJobListing, 0, len(listings))
	for _, l := range listings {
		if l.Status != entities.JobStatusActive {
			continue
		}
		l.PostedAgo = PostedAgo(now.Sub(l.PublishedAt))
		if viewer != nil && viewer.HasCoordinates() && (l.Latitude != 0 || l.Longitude != 0) {
			d := math.Round(haversineKm(viewer.Latitude, viewer.Longitude, l.Latitude, l.Longitude)*10) / 10
			l.DistanceKm = &d
		}
		out = append(out, l)
	}
	// insertion sort keeps equal timestamps in storage order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].PublishedAt.After(out[j-1].PublishedAt); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// PostedAgo renders an age the way the feed cards show it.
func PostedAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	default:
		return plural(int(d/(30*24*time.Hour)), "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

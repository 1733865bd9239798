package appointment

import (
	"context"
	"time"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
)

// AvailabilityCache reads and writes day-level conflict counts.
type AvailabilityCache interface {
	Get(ctx context.Context, artistID uint, day time.Time) (domain.Conflicts, bool)
	Set(ctx context.Context, artistID uint, day time.Time, conflicts domain.Conflicts)
}

type CheckAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
}

func NewCheckAvailability(repo domain.Repository, cache AvailabilityCache) *CheckAvailability {
	return &CheckAvailability{repo: repo, cache: cache}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	if _, err := uc.repo.GetArtist(ctx, in.ArtistID); err != nil {
		return nil, err
	}

	day := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)

	conflicts, hit := domain.Conflicts{}, false
	if uc.cache != nil {
		conflicts, hit = uc.cache.Get(ctx, in.ArtistID, day)
	}

	if !hit {
		var err error
		conflicts, err = uc.repo.CountDayConflicts(ctx, in.ArtistID, day)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			uc.cache.Set(ctx, in.ArtistID, day, conflicts)
		}
	}

	return &domain.Availability{
		Date:      day.Format("2006-01-02"),
		Time:      in.Time,
		Available: conflicts.None(),
		Conflicts: conflicts,
	}, nil
}

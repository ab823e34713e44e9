package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/mwjones-dev/pokernight/internal/dependencies/clock"
	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/storage"
)

// Partition splits the schedule around "now"
type Partition struct {
	// Upcoming is strictly after now, soonest first
	Upcoming []*model.Session
	// Past is at or before now, most recent first
	Past []*model.Session
}

// Service computes the upcoming/past schedule view
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new schedule Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Partition fetches all sessions and splits them on the current time
func (s *Service) Partition(ctx context.Context) (*Partition, error) {
	sessions, err := s.storage.ListSessions(ctx, nil)
	if err != nil {
		return nil, err
	}
	return Split(sessions, s.clock.Now()), nil
}

// Split partitions sessions around now. Sessions starting exactly at now
// count as past. Ties on start time keep fetch order. Exposed separately so
// the view is testable without a store.
func Split(sessions []*model.Session, now time.Time) *Partition {
	sorted := make([]*model.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAt().Before(sorted[j].StartsAt())
	})

	p := &Partition{
		Upcoming: []*model.Session{},
		Past:     []*model.Session{},
	}
	for _, sess := range sorted {
		if sess.StartsAt().After(now) {
			p.Upcoming = append(p.Upcoming, sess)
		} else {
			p.Past = append(p.Past, sess)
		}
	}

	// Past is displayed most recent first
	for i, j := 0, len(p.Past)-1; i < j; i, j = i+1, j-1 {
		p.Past[i], p.Past[j] = p.Past[j], p.Past[i]
	}

	return p
}

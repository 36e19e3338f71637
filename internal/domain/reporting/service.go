package reporting

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/clinicops/clinic/internal/domain/booking"
	"github.com/clinicops/clinic/internal/domain/center"
	"github.com/clinicops/clinic/internal/domain/identity"
)

// CenterSource supplies center snapshots. Satisfied by center.Repository.
type CenterSource interface {
	All(ctx context.Context) ([]*center.Center, error)
}

// PractitionerSource supplies practitioner snapshots and role counts.
// Satisfied by identity.Repository.
type PractitionerSource interface {
	AllPractitioners(ctx context.Context, statusFilter identity.Status) ([]*identity.Account, error)
	CountByRole(ctx context.Context, role identity.Role) (int, error)
}

// BookingSource supplies booking snapshots. Satisfied by booking.Repository.
type BookingSource interface {
	All(ctx context.Context) ([]*booking.Booking, error)
}

type Service struct {
	centers       CenterSource
	practitioners PractitionerSource
	bookings      BookingSource
}

func NewService(centers CenterSource, practitioners PractitionerSource, bookings BookingSource) *Service {
	return &Service{centers: centers, practitioners: practitioners, bookings: bookings}
}

// Generate fetches centers, active practitioners, and all bookings with
// three concurrent reads, then aggregates. Any fetch error fails the whole
// report; there is no partial result, retry, or caching.
func (s *Service) Generate(ctx context.Context) (*Report, error) {
	var (
		centers       []*center.Center
		practitioners []*identity.Account
		bookings      []*booking.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		centers, err = s.centers.All(gctx)
		if err != nil {
			return fmt.Errorf("fetch centers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		practitioners, err = s.practitioners.AllPractitioners(gctx, identity.StatusActive)
		if err != nil {
			return fmt.Errorf("fetch practitioners: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bookings, err = s.bookings.All(gctx)
		if err != nil {
			return fmt.Errorf("fetch bookings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Aggregate(centers, practitioners, bookings), nil
}

// GenerateSummary produces the overview card counts.
func (s *Service) GenerateSummary(ctx context.Context) (*Summary, error) {
	var (
		centers       []*center.Center
		practitioners []*identity.Account
		patients      int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		centers, err = s.centers.All(gctx)
		if err != nil {
			return fmt.Errorf("fetch centers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		practitioners, err = s.practitioners.AllPractitioners(gctx, identity.StatusActive)
		if err != nil {
			return fmt.Errorf("fetch practitioners: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		patients, err = s.practitioners.CountByRole(gctx, identity.RolePatient)
		if err != nil {
			return fmt.Errorf("count patients: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Centers:             len(centers),
		ActivePractitioners: len(practitioners),
		Patients:            patients,
	}
	for _, c := range centers {
		if c.Verified {
			summary.VerifiedCenters++
		}
	}
	return summary, nil
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicops/clinic/internal/domain/center"
)

type Service struct {
	bookings      Repository
	practitioners PractitionerDirectory
	centers       CenterDirectory
}

func NewService(bookings Repository, practitioners PractitionerDirectory, centers CenterDirectory) *Service {
	return &Service{bookings: bookings, practitioners: practitioners, centers: centers}
}

// defaultDurationMinutes applies when the client omits a session length.
const defaultDurationMinutes = 60

// CreateInput carries the fields accepted on booking creation. Therapy and
// the legacy treatment label are reconciled, therapy winning when both are
// present.
type CreateInput struct {
	PatientID       uuid.UUID  `json:"patient_id"`
	PatientName     string     `json:"patient_name"`
	Therapy         string     `json:"therapy"`
	Treatment       string     `json:"treatment"`
	CenterID        *uuid.UUID `json:"center_id"`
	CenterName      string     `json:"center_name"`
	Date            time.Time  `json:"date"`
	TimeOfDay       string     `json:"time"`
	DurationMinutes int        `json:"duration_minutes"`
	Cost            float64    `json:"cost"`
	Requirements    string     `json:"requirements"`
}

// Create books a therapy session. A practitioner is auto-assigned from the
// directory when one exists, and the booking starts out confirmed.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Booking, error) {
	therapy := in.Therapy
	if therapy == "" {
		therapy = in.Treatment
	}
	if therapy == "" {
		return nil, fmt.Errorf("therapy is required")
	}
	if in.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if in.PatientName == "" {
		return nil, fmt.Errorf("patient_name is required")
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	centerName := in.CenterName
	if in.CenterID != nil {
		resolved, err := s.centers.GetByID(ctx, *in.CenterID)
		if err != nil {
			if errors.Is(err, center.ErrNotFound) {
				return nil, ErrInvalidCenter
			}
			return nil, fmt.Errorf("resolve center: %w", err)
		}
		centerName = resolved.Name
	}
	if in.CenterID == nil && centerName == "" {
		return nil, fmt.Errorf("center is required")
	}

	// Pick any one practitioner from the directory. The listing is
	// unscoped and may be empty, in which case the booking stays
	// unassigned.
	var practitionerID *uuid.UUID
	candidates, _, err := s.practitioners.ListPractitioners(ctx, "", 1, 0)
	if err != nil {
		return nil, fmt.Errorf("list practitioners: %w", err)
	}
	if len(candidates) > 0 {
		id := candidates[0].ID
		practitionerID = &id
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	b := &Booking{
		PatientID:       in.PatientID,
		PractitionerID:  practitionerID,
		PatientName:     in.PatientName,
		Therapy:         therapy,
		CenterID:        in.CenterID,
		CenterName:      centerName,
		Date:            in.Date,
		TimeOfDay:       in.TimeOfDay,
		DurationMinutes: duration,
		Cost:            in.Cost,
		Requirements:    in.Requirements,
		Status:          StatusConfirmed,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AdvanceStatus moves a booking one step forward along
// pending -> confirmed -> completed. Regressions and skips are rejected.
func (s *Service) AdvanceStatus(ctx context.Context, id uuid.UUID, target Status) (*Booking, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("invalid status: %s", target)
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanProgress(b.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, target)
	}

	if err := s.bookings.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	b.Status = target
	return b, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) ListByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	return s.bookings.ListByPractitioner(ctx, practitionerID, limit, offset)
}

func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]*Booking, int, error) {
	return s.bookings.ListAll(ctx, limit, offset)
}

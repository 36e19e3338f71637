package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicops/clinic/internal/domain/center"
	"github.com/clinicops/clinic/internal/domain/identity"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]*Booking, int, error)
	ListAll(ctx context.Context, limit, offset int) ([]*Booking, int, error)
	All(ctx context.Context) ([]*Booking, error)
}

// PractitionerDirectory is the slice of the identity domain the booking
// service needs for auto-assignment. Satisfied by identity.Repository.
type PractitionerDirectory interface {
	ListPractitioners(ctx context.Context, statusFilter identity.Status, limit, offset int) ([]*identity.Account, int, error)
}

// CenterDirectory resolves center references on booking creation. Satisfied
// by center.Repository.
type CenterDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*center.Center, error)
}

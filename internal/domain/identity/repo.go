package identity

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByEmailAndRole(ctx context.Context, email string, role Role) (*Account, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListPractitioners(ctx context.Context, statusFilter Status, limit, offset int) ([]*Account, int, error)
	ListAll(ctx context.Context, limit, offset int) ([]*Account, int, error)
	AllPractitioners(ctx context.Context, statusFilter Status) ([]*Account, error)
	CountByRole(ctx context.Context, role Role) (int, error)
}

// CenterDirectory is the slice of the center domain the identity service
// needs: existence checks for practitioner center references.
type CenterDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

package center

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Center) error
	GetByID(ctx context.Context, id uuid.UUID) (*Center, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByNameLocation(ctx context.Context, name, location string) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	UpdateVerified(ctx context.Context, id uuid.UUID, verified bool) error
	List(ctx context.Context, limit, offset int) ([]*Center, int, error)
	All(ctx context.Context) ([]*Center, error)
}

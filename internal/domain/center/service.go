package center

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

type Service struct {
	centers Repository
}

func NewService(centers Repository) *Service {
	return &Service{centers: centers}
}

// CreateInput carries the fields accepted on center creation. Verified is a
// pointer so an omitted flag can default to true while an explicit false is
// honored.
type CreateInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
	Verified *bool  `json:"verified"`
}

// Create registers a new treatment center. The (name, location) pair must be
// unique and a fresh registration code is assigned.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Center, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if in.Location == "" {
		return nil, fmt.Errorf("location is required")
	}

	exists, err := s.centers.ExistsByNameLocation(ctx, in.Name, in.Location)
	if err != nil {
		return nil, fmt.Errorf("check duplicate center: %w", err)
	}
	if exists {
		return nil, ErrDuplicateCenter
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	verified := true
	if in.Verified != nil {
		verified = *in.Verified
	}

	c := &Center{
		Name:             in.Name,
		Location:         in.Location,
		Contact:          in.Contact,
		Verified:         verified,
		RegistrationCode: code,
	}
	if err := s.centers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

const codeAttempts = 10

// generateCode picks an unused "RC" + six digit registration code.
func (s *Service) generateCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := fmt.Sprintf("RC%06d", 100000+rand.Intn(900000))
		taken, err := s.centers.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check registration code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not allocate a registration code after %d attempts", codeAttempts)
}

// SetVerified toggles the admin verification flag.
func (s *Service) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*Center, error) {
	if err := s.centers.UpdateVerified(ctx, id, verified); err != nil {
		return nil, err
	}
	return s.centers.GetByID(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Center, error) {
	return s.centers.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Center, int, error) {
	return s.centers.List(ctx, limit, offset)
}

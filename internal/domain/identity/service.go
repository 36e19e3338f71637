package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clinicops/clinic/internal/platform/auth"
)

type Service struct {
	accounts Repository
	centers  CenterDirectory
	tokens   *auth.TokenIssuer
}

func NewService(accounts Repository, centers CenterDirectory, tokens *auth.TokenIssuer) *Service {
	return &Service{accounts: accounts, centers: centers, tokens: tokens}
}

// SignupInput carries the fields accepted on account registration.
type SignupInput struct {
	Email    string               `json:"email"`
	Password string               `json:"password"`
	Name     string               `json:"name"`
	Role     Role                 `json:"role"`
	Profile  *PractitionerProfile `json:"practitioner,omitempty"`
}

// Signup registers a new account. Practitioners start pending and must
// reference an existing center; all other roles start active.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*Account, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if in.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if in.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", in.Role)
	}

	account := &Account{
		Email:  in.Email,
		Name:   in.Name,
		Role:   in.Role,
		Status: StatusActive,
	}

	if in.Role == RolePractitioner {
		if in.Profile == nil || in.Profile.CenterID == uuid.Nil {
			return nil, fmt.Errorf("center_id is required for practitioners")
		}
		exists, err := s.centers.Exists(ctx, in.Profile.CenterID)
		if err != nil {
			return nil, fmt.Errorf("check center: %w", err)
		}
		if !exists {
			return nil, ErrInvalidCenter
		}
		account.Status = StatusPending
		account.Practitioner = in.Profile
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = hash

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials for the given role and returns the account with
// a signed access token.
func (s *Service) Login(ctx context.Context, email, password string, role Role) (*Account, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, "", fmt.Errorf("invalid role: %s", role)
	}

	account, err := s.accounts.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if err == ErrNotFound {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID.String(), string(account.Role), account.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return account, token, nil
}

// UpdateStatus moves a practitioner account along the approval lifecycle.
// Only listed edges are allowed; everything else is ErrInvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, target Status) (*Account, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("invalid status: %s", target)
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !account.IsPractitioner() {
		return nil, ErrNotFound
	}
	if !CanTransition(account.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, account.Status, target)
	}

	if err := s.accounts.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	account.Status = target
	return account, nil
}

func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *Service) ListPractitioners(ctx context.Context, statusFilter Status, limit, offset int) ([]*Account, int, error) {
	if statusFilter != "" && !statusFilter.Valid() {
		return nil, 0, fmt.Errorf("invalid status: %s", statusFilter)
	}
	return s.accounts.ListPractitioners(ctx, statusFilter, limit, offset)
}

func (s *Service) ListAccounts(ctx context.Context, limit, offset int) ([]*Account, int, error) {
	return s.accounts.ListAll(ctx, limit, offset)
}

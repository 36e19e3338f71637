package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicops/clinic/internal/domain/center"
	"github.com/clinicops/clinic/internal/domain/identity"
	"github.com/clinicops/clinic/internal/platform/auth"
	"github.com/clinicops/clinic/internal/platform/db"
)

type seedAccount struct {
	Email    string
	Password string
	Name     string
	Role     identity.Role
}

var seedAccounts = []seedAccount{
	{Email: "admin@gmail.com", Password: "admin123", Name: "Admin User", Role: identity.RoleAdmin},
	{Email: "practitioner@gmail.com", Password: "practitioner123", Name: "Dr. John Practitioner", Role: identity.RolePractitioner},
	{Email: "patient@gmail.com", Password: "patient123", Name: "Jane Patient", Role: identity.RolePatient},
}

var seedCenters = []center.CreateInput{
	{Name: "Wellness Center Mumbai", Location: "Mumbai, Maharashtra"},
	{Name: "Ayurveda Healing Bangalore", Location: "Bangalore, Karnataka"},
	{Name: "Traditional Therapy Delhi", Location: "Delhi, NCR"},
	{Name: "Panchakarma Center Chennai", Location: "Chennai, Tamil Nadu"},
	{Name: "Holistic Health Pune", Location: "Pune, Maharashtra"},
	{Name: "Ayurvedic Wellness Kochi", Location: "Kochi, Kerala"},
}

// runSeed inserts the default login accounts and the sample treatment
// centers inside a single transaction. It is idempotent: records that
// already exist are skipped.
func runSeed(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	ctx = db.WithTx(ctx, tx)

	centerSvc := center.NewService(center.NewRepoPG(pool))
	accountRepo := identity.NewRepoPG(pool)

	firstCenterID, err := seedSampleCenters(ctx, centerSvc)
	if err != nil {
		return err
	}

	for _, sa := range seedAccounts {
		hash, err := auth.HashPassword(sa.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", sa.Email, err)
		}
		account := &identity.Account{
			Email:        sa.Email,
			PasswordHash: hash,
			Name:         sa.Name,
			Role:         sa.Role,
			Status:       identity.StatusActive,
		}
		if sa.Role == identity.RolePractitioner {
			account.Practitioner = &identity.PractitionerProfile{
				CenterID:       firstCenterID,
				Specialization: "Panchakarma",
			}
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, identity.ErrDuplicateEmail) {
				fmt.Printf("account %s already exists, skipping\n", sa.Email)
				continue
			}
			return fmt.Errorf("seed account %s: %w", sa.Email, err)
		}
		fmt.Printf("created %s account %s\n", sa.Role, sa.Email)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	fmt.Println("Seeding completed.")
	return nil
}

// seedSampleCenters creates the sample centers (verified by the creation
// default) and returns the id of the first center so the seeded
// practitioner can reference it.
func seedSampleCenters(ctx context.Context, svc *center.Service) (firstID uuid.UUID, err error) {
	for i, in := range seedCenters {
		c, err := svc.Create(ctx, in)
		if err != nil {
			if errors.Is(err, center.ErrDuplicateCenter) {
				fmt.Printf("center %q already exists, skipping\n", in.Name)
				if i == 0 {
					existing, _, lerr := svc.List(ctx, 1, 0)
					if lerr != nil || len(existing) == 0 {
						return firstID, fmt.Errorf("look up existing center: %w", lerr)
					}
					firstID = existing[0].ID
				}
				continue
			}
			return firstID, fmt.Errorf("seed center %q: %w", in.Name, err)
		}
		fmt.Printf("created center %s (%s)\n", c.Name, c.RegistrationCode)
		if i == 0 {
			firstID = c.ID
		}
	}
	return firstID, nil
}

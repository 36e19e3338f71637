package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicops/clinic/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const accountCols = `id, email, password_hash, name, role, status,
	center_id, specialization, working_hours, created_at, updated_at`

func scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	var centerID *uuid.UUID
	var specialization *string
	var workingHours []byte

	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.Status,
		&centerID, &specialization, &workingHours, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if a.Role == RolePractitioner {
		profile := &PractitionerProfile{}
		if centerID != nil {
			profile.CenterID = *centerID
		}
		if specialization != nil {
			profile.Specialization = *specialization
		}
		if len(workingHours) > 0 {
			var wh WorkingHours
			if err := json.Unmarshal(workingHours, &wh); err != nil {
				return nil, fmt.Errorf("decode working_hours: %w", err)
			}
			profile.WorkingHours = &wh
		}
		a.Practitioner = profile
	}

	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *repoPG) Create(ctx context.Context, a *Account) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	var centerID *uuid.UUID
	var specialization *string
	var workingHours []byte
	if a.Practitioner != nil {
		centerID = &a.Practitioner.CenterID
		specialization = &a.Practitioner.Specialization
		if a.Practitioner.WorkingHours != nil {
			var err error
			workingHours, err = json.Marshal(a.Practitioner.WorkingHours)
			if err != nil {
				return fmt.Errorf("encode working_hours: %w", err)
			}
		}
	}

	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO account (id, email, password_hash, name, role, status,
			center_id, specialization, working_hours)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.Email, a.PasswordHash, a.Name, a.Role, a.Status,
		centerID, specialization, workingHours)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return scanAccount(r.conn(ctx).QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE id = $1`, id))
}

func (r *repoPG) FindByEmailAndRole(ctx context.Context, email string, role Role) (*Account, error) {
	return scanAccount(r.conn(ctx).QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE email = $1 AND role = $2`, email, role))
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE account SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListPractitioners(ctx context.Context, statusFilter Status, limit, offset int) ([]*Account, int, error) {
	where := `role = 'practitioner'`
	args := []interface{}{}
	if statusFilter != "" {
		where += ` AND status = $1`
		args = append(args, statusFilter)
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM account WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM account WHERE %s ORDER BY created_at ASC LIMIT %d OFFSET %d`,
		accountCols, where, limit, offset)
	return r.list(ctx, query, args, total)
}

func (r *repoPG) ListAll(ctx context.Context, limit, offset int) ([]*Account, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM account`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM account ORDER BY created_at ASC LIMIT %d OFFSET %d`,
		accountCols, limit, offset)
	return r.list(ctx, query, nil, total)
}

func (r *repoPG) AllPractitioners(ctx context.Context, statusFilter Status) ([]*Account, error) {
	query := `SELECT ` + accountCols + ` FROM account WHERE role = 'practitioner'`
	args := []interface{}{}
	if statusFilter != "" {
		query += ` AND status = $1`
		args = append(args, statusFilter)
	}
	query += ` ORDER BY created_at ASC`

	accounts, _, err := r.list(ctx, query, args, 0)
	return accounts, err
}

func (r *repoPG) CountByRole(ctx context.Context, role Role) (int, error) {
	var count int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM account WHERE role = $1`, role).Scan(&count)
	return count, err
}

func (r *repoPG) list(ctx context.Context, query string, args []interface{}, total int) ([]*Account, int, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

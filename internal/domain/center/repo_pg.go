package center

import (
	"context"
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

const centerCols = `id, name, location, contact, verified, registration_code, created_at, updated_at`

func scanCenter(row pgx.Row) (*Center, error) {
	var c Center
	err := row.Scan(&c.ID, &c.Name, &c.Location, &c.Contact, &c.Verified,
		&c.RegistrationCode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repoPG) Create(ctx context.Context, c *Center) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO center (id, name, location, contact, verified, registration_code)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, c.Name, c.Location, c.Contact, c.Verified, c.RegistrationCode)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "center_name_location_key" {
			return ErrDuplicateCenter
		}
		return err
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Center, error) {
	return scanCenter(r.conn(ctx).QueryRow(ctx,
		`SELECT `+centerCols+` FROM center WHERE id = $1`, id))
}

func (r *repoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM center WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repoPG) ExistsByNameLocation(ctx context.Context, name, location string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM center WHERE name = $1 AND location = $2)`,
		name, location).Scan(&exists)
	return exists, err
}

func (r *repoPG) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM center WHERE registration_code = $1)`, code).Scan(&exists)
	return exists, err
}

func (r *repoPG) UpdateVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE center SET verified = $2, updated_at = NOW() WHERE id = $1`, id, verified)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Center, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM center`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, fmt.Sprintf(
		`SELECT %s FROM center ORDER BY created_at ASC LIMIT %d OFFSET %d`,
		centerCols, limit, offset))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	centers, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return centers, total, nil
}

func (r *repoPG) All(ctx context.Context) ([]*Center, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+centerCols+` FROM center ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*Center, error) {
	var centers []*Center
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		centers = append(centers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return centers, nil
}

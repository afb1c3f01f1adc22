package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lease-amortizer/domain"
)

const leaseSchema = `
CREATE TABLE IF NOT EXISTS lease_calculations (
	id               UUID PRIMARY KEY,
	lease_term_years INTEGER NOT NULL,
	input_json       JSONB NOT NULL,
	result_json      JSONB NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lease_calculations_created_at
	ON lease_calculations(created_at);
`

// PostgresLeaseRepository stores calculations as JSONB documents.
type PostgresLeaseRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLeaseRepository connects to databaseURL and makes sure the
// lease_calculations table exists.
func NewPostgresLeaseRepository(ctx context.Context, databaseURL string) (*PostgresLeaseRepository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, leaseSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &PostgresLeaseRepository{pool: pool}, nil
}

func (r *PostgresLeaseRepository) Save(ctx context.Context, record domain.CalculationRecord) error {
	inputJSON, err := json.Marshal(record.Input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `
		INSERT INTO lease_calculations (id, lease_term_years, input_json, result_json, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = r.pool.Exec(ctx, query,
		record.ID,
		record.Input.LeaseTermYears,
		inputJSON,
		resultJSON,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

func (r *PostgresLeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.CalculationRecord, error) {
	query := `SELECT input_json, result_json, created_at FROM lease_calculations WHERE id = $1`

	var (
		record     = domain.CalculationRecord{ID: id}
		inputJSON  []byte
		resultJSON []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&inputJSON, &resultJSON, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CalculationRecord{}, ErrNotFound
		}
		return domain.CalculationRecord{}, fmt.Errorf("failed to load calculation: %w", err)
	}

	if err := json.Unmarshal(inputJSON, &record.Input); err != nil {
		return domain.CalculationRecord{}, fmt.Errorf("failed to unmarshal input: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
		return domain.CalculationRecord{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return record, nil
}

func (r *PostgresLeaseRepository) Close() {
	r.pool.Close()
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"lease-amortizer/domain"
)

var ErrNotFound = errors.New("calculation not found")

type LeaseRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (domain.CalculationRecord, error)
}

package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"lease-amortizer/domain"
)

// LeaseRepositoryMemory is an in-memory implementation of LeaseRepository.
type LeaseRepositoryMemory struct {
	mu   sync.RWMutex
	data map[uuid.UUID]domain.CalculationRecord
}

// NewLeaseRepositoryMemory creates a new in-memory lease repository.
func NewLeaseRepositoryMemory() *LeaseRepositoryMemory {
	return &LeaseRepositoryMemory{
		data: make(map[uuid.UUID]domain.CalculationRecord),
	}
}

// Save stores the calculation in memory.
func (r *LeaseRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[record.ID] = record
	return nil
}

func (r *LeaseRepositoryMemory) FindByID(
	_ context.Context,
	id uuid.UUID,
) (domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.data[id]
	if !ok {
		return domain.CalculationRecord{}, ErrNotFound
	}
	return record, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"lease-amortizer/domain"
	"lease-amortizer/repository"
)

type LeaseService struct {
	repo  repository.LeaseRepository
	cache repository.CacheRepository
	now   func() time.Time
}

// NewLeaseService creates a new LeaseService with the given repository and cache.
func NewLeaseService(repo repository.LeaseRepository,
	cache repository.CacheRepository,
) *LeaseService {
	return &LeaseService{repo: repo, cache: cache, now: time.Now}
}

// Calculate measures the lease described by input.
func (s *LeaseService) Calculate(
	ctx context.Context,
	input domain.LeaseInput,
) (domain.LeaseResult, error) {
	record, err := s.CalculateRecord(ctx, input)
	if err != nil {
		return domain.LeaseResult{}, err
	}
	return record.Result, nil
}

// CalculateRecord measures the lease and records the calculation in the
// history. Cache and history failures are logged, never returned.
func (s *LeaseService) CalculateRecord(
	ctx context.Context,
	input domain.LeaseInput,
) (domain.CalculationRecord, error) {

	if err := ValidateLeaseInput(input); err != nil {
		return domain.CalculationRecord{}, err
	}

	key := cacheKey(input)
	result, ok := s.lookup(ctx, key)
	if !ok {
		liability, err := ComputeInitialLiability(input)
		if err != nil {
			return domain.CalculationRecord{}, err
		}
		result, err = BuildSchedule(input, liability)
		if err != nil {
			return domain.CalculationRecord{}, err
		}
		result = s.store(ctx, key, result)
	}

	record := domain.CalculationRecord{
		ID:        uuid.New(),
		Input:     input,
		Result:    result,
		CreatedAt: s.now().UTC(),
	}

	// Guardar el historial (no crítico si falla)
	if err := s.repo.Save(ctx, record); err != nil {
		slog.Warn("failed to save lease calculation", "id", record.ID, "error", err)
	}

	return record, nil
}

// Get returns a previously recorded calculation.
func (s *LeaseService) Get(ctx context.Context, id uuid.UUID) (domain.CalculationRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LeaseService) lookup(ctx context.Context, key string) (domain.LeaseResult, bool) {
	cached, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.LeaseResult{}, false
	}

	var result domain.LeaseResult
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		slog.Warn("discarding unreadable cache entry", "key", key, "error", err)
		return domain.LeaseResult{}, false
	}
	slog.Debug("lease result served from cache", "key", key)
	return result, true
}

// store caches result and returns it decoded from the cached form, so a
// computed result and a later cache hit carry the same decimal representation.
func (s *LeaseService) store(ctx context.Context, key string, result domain.LeaseResult) domain.LeaseResult {
	encoded, err := json.Marshal(result)
	if err != nil {
		slog.Warn("failed to encode lease result for cache", "key", key, "error", err)
		return result
	}
	if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
		slog.Warn("failed to cache lease result", "key", key, "error", err)
	}

	var normalized domain.LeaseResult
	if err := json.Unmarshal(encoded, &normalized); err != nil {
		slog.Warn("failed to decode cached lease result", "key", key, "error", err)
		return result
	}
	return normalized
}

// cacheKey hashes the canonical form of the input. Decimal.String drops
// trailing zeros, so 10000 and 10000.00 share a key.
func cacheKey(input domain.LeaseInput) string {
	canonical := fmt.Sprintf("%d|%s|%s|%s|%s",
		input.LeaseTermYears,
		input.AnnualPayment.String(),
		input.ResidualPayment.String(),
		input.AnnualInterestRate.String(),
		input.InitialDirectCost.String(),
	)
	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64String(canonical))
}

package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"lease-amortizer/domain"
)

var (
	maxInterestRate = decimal.NewFromInt(MaxInterestRate)
	maxAmount       = decimal.NewFromFloat(MaxAmount)
)

// ValidateLeaseInput checks every precondition of the engine. The term is
// checked first, then the rate, then the amounts.
func ValidateLeaseInput(input domain.LeaseInput) error {
	if input.LeaseTermYears < 1 {
		return domain.NewInvalidTermError("must be at least 1 year")
	}
	if input.LeaseTermYears > MaxLeaseTermYears {
		return domain.NewInvalidTermError(
			fmt.Sprintf("exceeds the maximum of %d years", MaxLeaseTermYears))
	}

	if input.AnnualInterestRate.IsZero() {
		return domain.NewInvalidRateError("must not be zero")
	}
	if input.AnnualInterestRate.IsNegative() {
		return domain.NewInvalidRateError("must be greater than zero")
	}
	if input.AnnualInterestRate.GreaterThan(maxInterestRate) {
		return domain.NewInvalidRateError(
			fmt.Sprintf("exceeds the maximum of %d%%", MaxInterestRate*100))
	}

	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"annual_payment", input.AnnualPayment},
		{"residual_payment", input.ResidualPayment},
		{"initial_direct_cost", input.InitialDirectCost},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return domain.NewInvalidInputError(a.field, "must not be negative")
		}
		if a.value.GreaterThan(maxAmount) {
			return domain.NewInvalidInputError(a.field,
				fmt.Sprintf("exceeds the maximum of %s", maxAmount.StringFixed(2)))
		}
	}

	return nil
}

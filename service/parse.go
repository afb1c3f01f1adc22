package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"lease-amortizer/domain"
)

// ParseLeaseForm converts the five raw form fields into a LeaseInput. The
// interest rate is entered as a percentage. Only syntax is checked here;
// ranges are left to ValidateLeaseInput.
func ParseLeaseForm(form domain.LeaseForm) (domain.LeaseInput, error) {
	term, err := strconv.Atoi(strings.TrimSpace(form.LeaseTerm))
	if err != nil {
		return domain.LeaseInput{}, domain.NewInvalidInputError("lease_term", "must be a whole number of years")
	}

	payment, err := parseAmount("annual_payment", form.AnnualPayment)
	if err != nil {
		return domain.LeaseInput{}, err
	}
	residual, err := parseAmount("residual_payment", form.ResidualPayment)
	if err != nil {
		return domain.LeaseInput{}, err
	}
	ratePercent, err := parseAmount("interest_rate", form.InterestRatePercent)
	if err != nil {
		return domain.LeaseInput{}, err
	}
	directCost, err := parseAmount("initial_direct_cost", form.InitialDirectCost)
	if err != nil {
		return domain.LeaseInput{}, err
	}

	return domain.LeaseInput{
		LeaseTermYears:     term,
		AnnualPayment:      payment,
		ResidualPayment:    residual,
		AnnualInterestRate: ratePercent.Shift(ratePercentShift),
		InitialDirectCost:  directCost,
	}, nil
}

// parseAmount accepts plain decimals as well as "R1,250.50" style input.
func parseAmount(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R")
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, domain.NewInvalidInputError(field, "is required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewInvalidInputError(field, "must be a number")
	}
	return d, nil
}

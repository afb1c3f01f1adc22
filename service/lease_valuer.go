package service

import (
	"github.com/shopspring/decimal"

	"lease-amortizer/domain"
)

var one = decimal.NewFromInt(1)

// compoundFactor returns (1+rate)^years. It multiplies year by year so the
// factor stays exact; only the later divisions are rounded.
func compoundFactor(rate decimal.Decimal, years int) decimal.Decimal {
	growth := one.Add(rate)
	factor := one
	for i := 0; i < years; i++ {
		factor = factor.Mul(growth)
	}
	return factor
}

func checkTermAndRate(input domain.LeaseInput) error {
	if input.LeaseTermYears < 1 {
		return domain.NewInvalidTermError("must be at least 1 year")
	}
	if !input.AnnualInterestRate.IsPositive() {
		return domain.NewInvalidRateError("must be greater than zero")
	}
	return nil
}

// ComputeInitialLiability discounts the annual payments (paid at year end)
// and the residual payment at the lease rate:
//
//	PV = A * (1 - (1+r)^-n) / r  +  R / (1+r)^n
//
// The payment term is evaluated as A * ((1+r)^n - 1) / (r * (1+r)^n) so the
// only rounding is the final division, which keeps tiny rates accurate.
func ComputeInitialLiability(input domain.LeaseInput) (decimal.Decimal, error) {
	if err := checkTermAndRate(input); err != nil {
		return decimal.Zero, err
	}

	rate := input.AnnualInterestRate
	factor := compoundFactor(rate, input.LeaseTermYears)

	pvPayments := input.AnnualPayment.Mul(factor.Sub(one)).Div(rate.Mul(factor))
	pvResidual := input.ResidualPayment.Div(factor)

	return pvPayments.Add(pvResidual), nil
}

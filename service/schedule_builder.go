package service

import (
	"github.com/shopspring/decimal"

	"lease-amortizer/domain"
)

// BuildSchedule rolls the liability forward year by year and measures the
// right-of-use asset.
//
// The final row always closes on the residual payment: its ending balance is
// set to ResidualPayment and its payment is re-derived as principal plus
// interest. Whatever the roll-forward would have left is reported as
// ResidualAdjustment. No intermediate rounding is applied.
func BuildSchedule(
	input domain.LeaseInput,
	initialLiability decimal.Decimal,
) (domain.LeaseResult, error) {

	if err := checkTermAndRate(input); err != nil {
		return domain.LeaseResult{}, err
	}

	n := input.LeaseTermYears
	rate := input.AnnualInterestRate

	schedule := make([]domain.AmortizationRow, 0, n)
	adjustment := decimal.Zero
	beginning := initialLiability

	for year := 1; year <= n; year++ {
		interest := beginning.Mul(rate)
		principal := input.AnnualPayment.Sub(interest)
		payment := input.AnnualPayment
		ending := beginning.Sub(principal)

		if year == n {
			adjustment = input.ResidualPayment.Sub(ending)
			ending = input.ResidualPayment
			payment = principal.Add(interest)
		}

		schedule = append(schedule, domain.AmortizationRow{
			Year:             year,
			BeginningBalance: beginning,
			Payment:          payment,
			Interest:         interest,
			Principal:        principal,
			EndingBalance:    ending,
		})
		beginning = ending
	}

	rightOfUse := initialLiability.Add(input.InitialDirectCost)
	perYear := rightOfUse.Div(decimal.NewFromInt(int64(n)))

	depreciation := make([]domain.DepreciationRow, 0, n)
	carrying := rightOfUse
	for year := 1; year <= n; year++ {
		carrying = carrying.Sub(perYear)
		depreciation = append(depreciation, domain.DepreciationRow{
			Year:           year,
			Depreciation:   perYear,
			CarryingAmount: carrying,
		})
	}

	// Years 1 and 2 are always reported, even for a one-year lease.
	carryingYear1 := rightOfUse.Sub(perYear)
	carryingYear2 := carryingYear1.Sub(perYear)

	return domain.LeaseResult{
		InitialLeaseLiability: initialLiability,
		InitialDirectCost:     input.InitialDirectCost,
		RightOfUseAsset:       rightOfUse,
		DepreciationPerYear:   perYear,
		CarryingAmountYear1:   carryingYear1,
		CarryingAmountYear2:   carryingYear2,
		ResidualAdjustment:    adjustment,
		Schedule:              schedule,
		Depreciation:          depreciation,
	}, nil
}

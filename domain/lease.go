package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaseInput holds the parameters of an annuity-style finance lease.
// AnnualInterestRate is a fraction (0.08 for 8%).
type LeaseInput struct {
	LeaseTermYears     int             `json:"lease_term_years" yaml:"lease_term_years"`
	AnnualPayment      decimal.Decimal `json:"annual_payment" yaml:"annual_payment"`
	ResidualPayment    decimal.Decimal `json:"residual_payment" yaml:"residual_payment"`
	AnnualInterestRate decimal.Decimal `json:"annual_interest_rate" yaml:"annual_interest_rate"`
	InitialDirectCost  decimal.Decimal `json:"initial_direct_cost" yaml:"initial_direct_cost"`
}

// LeaseForm is the raw, unparsed version of LeaseInput as typed by a user.
// InterestRatePercent is a percentage (8 for 8%).
type LeaseForm struct {
	LeaseTerm           string
	AnnualPayment       string
	ResidualPayment     string
	InterestRatePercent string
	InitialDirectCost   string
}

type AmortizationRow struct {
	Year             int             `json:"year" yaml:"year"`
	BeginningBalance decimal.Decimal `json:"beginning_balance" yaml:"beginning_balance"`
	Payment          decimal.Decimal `json:"payment" yaml:"payment"`
	Interest         decimal.Decimal `json:"interest" yaml:"interest"`
	Principal        decimal.Decimal `json:"principal" yaml:"principal"`
	EndingBalance    decimal.Decimal `json:"ending_balance" yaml:"ending_balance"`
}

type DepreciationRow struct {
	Year           int             `json:"year" yaml:"year"`
	Depreciation   decimal.Decimal `json:"depreciation" yaml:"depreciation"`
	CarryingAmount decimal.Decimal `json:"carrying_amount" yaml:"carrying_amount"`
}

// LeaseResult is the full measurement of a lease: the liability schedule
// and the right-of-use asset.
type LeaseResult struct {
	InitialLeaseLiability decimal.Decimal `json:"initial_lease_liability" yaml:"initial_lease_liability"`
	InitialDirectCost     decimal.Decimal `json:"initial_direct_cost" yaml:"initial_direct_cost"`
	RightOfUseAsset       decimal.Decimal `json:"right_of_use_asset" yaml:"right_of_use_asset"`
	DepreciationPerYear   decimal.Decimal `json:"depreciation_per_year" yaml:"depreciation_per_year"`
	CarryingAmountYear1   decimal.Decimal `json:"carrying_amount_year_1" yaml:"carrying_amount_year_1"`
	CarryingAmountYear2   decimal.Decimal `json:"carrying_amount_year_2" yaml:"carrying_amount_year_2"`

	// ResidualAdjustment is the amount absorbed by forcing the final ending
	// balance to the residual value.
	ResidualAdjustment decimal.Decimal `json:"residual_adjustment" yaml:"residual_adjustment"`

	Schedule     []AmortizationRow `json:"schedule" yaml:"schedule"`
	Depreciation []DepreciationRow `json:"depreciation" yaml:"depreciation"`
}

// CalculationRecord is a stored calculation.
type CalculationRecord struct {
	ID        uuid.UUID   `json:"id"`
	Input     LeaseInput  `json:"input"`
	Result    LeaseResult `json:"result"`
	CreatedAt time.Time   `json:"created_at"`
}

package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"lease-amortizer/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimalClose reports whether a and b differ by at most tolerance.
func decimalClose(a, b decimal.Decimal, tolerance string) bool {
	return a.Sub(b).Abs().LessThanOrEqual(d(tolerance))
}

func scenarioInput() domain.LeaseInput {
	return domain.LeaseInput{
		LeaseTermYears:     3,
		AnnualPayment:      d("10000"),
		ResidualPayment:    d("2000"),
		AnnualInterestRate: d("0.10"),
		InitialDirectCost:  d("500"),
	}
}

func assertSameResult(t *testing.T, want, got domain.LeaseResult) {
	t.Helper()

	pairs := []struct {
		name      string
		want, got decimal.Decimal
	}{
		{"InitialLeaseLiability", want.InitialLeaseLiability, got.InitialLeaseLiability},
		{"InitialDirectCost", want.InitialDirectCost, got.InitialDirectCost},
		{"RightOfUseAsset", want.RightOfUseAsset, got.RightOfUseAsset},
		{"DepreciationPerYear", want.DepreciationPerYear, got.DepreciationPerYear},
		{"CarryingAmountYear1", want.CarryingAmountYear1, got.CarryingAmountYear1},
		{"CarryingAmountYear2", want.CarryingAmountYear2, got.CarryingAmountYear2},
		{"ResidualAdjustment", want.ResidualAdjustment, got.ResidualAdjustment},
	}
	for _, p := range pairs {
		if !p.want.Equal(p.got) {
			t.Errorf("%s: expected %s, got %s", p.name, p.want, p.got)
		}
	}

	if len(want.Schedule) != len(got.Schedule) {
		t.Fatalf("schedule length: expected %d, got %d", len(want.Schedule), len(got.Schedule))
	}
	for i := range want.Schedule {
		w, g := want.Schedule[i], got.Schedule[i]
		if w.Year != g.Year ||
			!w.BeginningBalance.Equal(g.BeginningBalance) ||
			!w.Payment.Equal(g.Payment) ||
			!w.Interest.Equal(g.Interest) ||
			!w.Principal.Equal(g.Principal) ||
			!w.EndingBalance.Equal(g.EndingBalance) {
			t.Errorf("schedule row %d differs: expected %+v, got %+v", i+1, w, g)
		}
	}

	if len(want.Depreciation) != len(got.Depreciation) {
		t.Fatalf("depreciation length: expected %d, got %d", len(want.Depreciation), len(got.Depreciation))
	}
	for i := range want.Depreciation {
		w, g := want.Depreciation[i], got.Depreciation[i]
		if w.Year != g.Year ||
			!w.Depreciation.Equal(g.Depreciation) ||
			!w.CarryingAmount.Equal(g.CarryingAmount) {
			t.Errorf("depreciation row %d differs: expected %+v, got %+v", i+1, w, g)
		}
	}
}

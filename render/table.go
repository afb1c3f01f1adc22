package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"lease-amortizer/domain"
)

type TableOptions struct {
	Currency string
	// AllYears prints the carrying amount for every year of the term instead
	// of years 1 and 2 only.
	AllYears bool
}

// WriteTable writes the amortization schedule followed by the right-of-use
// asset measurement.
func WriteTable(w io.Writer, result domain.LeaseResult, opts TableOptions) error {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if _, err := fmt.Fprintln(w, "Amortization Schedule"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tBeginning Balance\tPayment\tInterest\tPrincipal\tEnding Balance\t")
	for _, row := range result.Schedule {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Year,
			FormatCurrency(row.BeginningBalance, opts.Currency),
			FormatCurrency(row.Payment, opts.Currency),
			FormatCurrency(row.Interest, opts.Currency),
			FormatCurrency(row.Principal, opts.Currency),
			FormatCurrency(row.EndingBalance, opts.Currency),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	line := func(label string, amount string) {
		fmt.Fprintf(lw, "  %s:\t%s\n", label, amount)
	}

	fmt.Fprintln(lw)
	fmt.Fprintln(lw, "Right-of-Use Asset")
	fmt.Fprintln(lw, "Initial Recognition:")
	line("Lease Liability", FormatCurrency(result.InitialLeaseLiability, opts.Currency))
	line("Initial Direct Costs", FormatCurrency(result.InitialDirectCost, opts.Currency))
	line("Total (Initial Recognition)", FormatCurrency(result.RightOfUseAsset, opts.Currency))

	fmt.Fprintln(lw, "Subsequent Measurement:")
	line("Depreciation per Year", FormatCurrency(result.DepreciationPerYear, opts.Currency))
	if opts.AllYears {
		for _, row := range result.Depreciation {
			if row.Year > 1 {
				line(fmt.Sprintf("Depreciation (Year %d)", row.Year), FormatCurrency(row.Depreciation, opts.Currency))
			}
			line(fmt.Sprintf("Carrying Amount (Dec Year %d)", row.Year), FormatCurrency(row.CarryingAmount, opts.Currency))
		}
	} else {
		line("Carrying Amount (Dec Year 1)", FormatCurrency(result.CarryingAmountYear1, opts.Currency))
		line("Depreciation (Year 2)", FormatCurrency(result.DepreciationPerYear, opts.Currency))
		line("Carrying Amount (Dec Year 2)", FormatCurrency(result.CarryingAmountYear2, opts.Currency))
	}

	if !result.ResidualAdjustment.Round(2).IsZero() {
		line("Residual Adjustment (Final Year)", FormatCurrency(result.ResidualAdjustment, opts.Currency))
	}

	return lw.Flush()
}

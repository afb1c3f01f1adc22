package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lease-amortizer/domain"
	"lease-amortizer/render"
	"lease-amortizer/repository"
	"lease-amortizer/service"
)

type calculateOptions struct {
	form     domain.LeaseForm
	format   string
	currency string
	allYears bool
}

func newCalculateCmd() *cobra.Command {
	opts := &calculateOptions{}

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a lease amortization schedule",
		Long: `Calculate the initial lease liability, the amortization schedule and
the right-of-use asset for a finance lease.

The interest rate is a percentage (10 for 10%). Amounts may carry a currency
prefix and thousands separators, for example R10,000.

Example:
  leasecalc calculate --term 3 --payment 10000 --residual 2000 --rate 10 --idc 500
  leasecalc calculate --term 5 --payment R12,500 --residual 0 --rate 7.5 --idc 0 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, opts)
		},
	}

	flags := calculateCmd.Flags()
	flags.StringVar(&opts.form.LeaseTerm, "term", "", "lease term in whole years")
	flags.StringVar(&opts.form.AnnualPayment, "payment", "", "annual payment, made at the end of each year")
	flags.StringVar(&opts.form.ResidualPayment, "residual", "0", "residual value payable at the end of the term")
	flags.StringVar(&opts.form.InterestRatePercent, "rate", "", "annual interest rate in percent")
	flags.StringVar(&opts.form.InitialDirectCost, "idc", "0", "initial direct costs")
	flags.StringVar(&opts.format, "format", "table", "output format: table, json or yaml")
	flags.StringVar(&opts.currency, "currency", render.DefaultCurrency, "currency symbol for table output")
	flags.BoolVar(&opts.allYears, "all-years", false, "show depreciation for every year of the term")

	return calculateCmd
}

func runCalculate(cmd *cobra.Command, opts *calculateOptions) error {
	switch opts.format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	input, err := service.ParseLeaseForm(opts.form)
	if err != nil {
		return err
	}

	svc := service.NewLeaseService(
		repository.NewLeaseRepositoryMemory(),
		repository.NewMemoryCache(0),
	)

	result, err := svc.Calculate(cmd.Context(), input)
	if err != nil {
		return err
	}
	slog.Debug("lease calculated",
		"term", input.LeaseTermYears,
		"liability", result.InitialLeaseLiability.String(),
	)

	out := cmd.OutOrStdout()
	switch opts.format {
	case "json":
		return render.WriteJSON(out, result)
	case "yaml":
		return render.WriteYAML(out, result)
	default:
		return render.WriteTable(out, result, render.TableOptions{
			Currency: opts.currency,
			AllYears: opts.allYears,
		})
	}
}

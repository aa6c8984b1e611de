package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRateCommand(factory ServicesFactory) *cobra.Command {
	var amount float64
	cmd := &cobra.Command{
		Use:   "rate FROM TO",
		Short: "Resolve the exchange rate between two currencies",
		Long: `rate resolves FROM -> TO through the catalog, the public quote service and
the static fallback table, in that order. Unknown pairs resolve to 1.0.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := strings.ToUpper(strings.TrimSpace(args[0]))
			to := strings.ToUpper(strings.TrimSpace(args[1]))

			ctx := cmd.Context()
			svc, err := factory(ctx)
			if err != nil {
				return err
			}

			rate := svc.Rates.GetRate(ctx, from, to)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "1 %s = %v %s\n", from, rate, to)
			if cmd.Flags().Changed("amount") {
				fmt.Fprintf(out, "%v %s = %v %s\n", amount, from, svc.Rates.ConvertPrice(ctx, amount, from, to), to)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "Also convert this amount")
	return cmd
}

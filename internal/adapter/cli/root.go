package cli

import (
	"context"
	"fmt"
	"os"

	"invoice_intake/internal/usecase"

	"github.com/spf13/cobra"
)

// Services is what the commands need from the wired application.
type Services struct {
	Intake usecase.IIntakeUseCase
	Rates  usecase.ICurrencyRateResolver
}

// ServicesFactory wires Services lazily so `--help` works without a catalog.
type ServicesFactory func(ctx context.Context) (*Services, error)

// NewRootCommand builds the intake CLI:
//
//	intake
//	├── reconcile (text -> validated order -> PO / invoice)
//	└── rate      (resolve one exchange rate)
func NewRootCommand(factory ServicesFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "intake",
		Short: "Invoice and purchase order intake against Odoo",
		Long: `intake turns the text of an invoice or purchase order into an Odoo record.

Example Usage:
  intake reconcile --file invoice.txt --type invoice
  intake reconcile --text "Acme Corp, 2x Widget @ 10 USD" --yes
  intake rate USD EUR`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	root.AddCommand(newReconcileCommand(factory))
	root.AddCommand(newRateCommand(factory))
	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute(factory ServicesFactory) {
	if err := NewRootCommand(factory).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

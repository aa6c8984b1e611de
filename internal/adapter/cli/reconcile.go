package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"invoice_intake/internal/domain/entities"

	"github.com/spf13/cobra"
)

var errNoInputText = errors.New("one of --text or --file is required")

type reconcileOptions struct {
	text      string
	file      string
	orderType string
	yes       bool
}

func newReconcileCommand(factory ServicesFactory) *cobra.Command {
	opts := &reconcileOptions{}
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Validate extracted text against the catalog and create the order",
		Long: `reconcile parses the extracted text, matches vendor and products in the
catalog, prints the validated order and, once confirmed, creates a purchase
order or vendor invoice. A rejected creation prints a simulated order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd, factory, opts)
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Extracted document text")
	cmd.Flags().StringVar(&opts.file, "file", "", "Path to a file holding the extracted text")
	cmd.Flags().StringVar(&opts.orderType, "type", string(entities.OrderKindPurchaseOrder), "Record to create: po or invoice")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Create without asking for confirmation")
	return cmd
}

func runReconcile(cmd *cobra.Command, factory ServicesFactory, opts *reconcileOptions) error {
	kind := entities.OrderKind(strings.ToLower(strings.TrimSpace(opts.orderType)))
	if !kind.Valid() {
		return fmt.Errorf("invalid --type %q (want po or invoice)", opts.orderType)
	}
	text, err := readInputText(opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, err := factory(ctx)
	if err != nil {
		return err
	}

	order, err := svc.Intake.Confirm(ctx, text)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := printJSON(out, "Validated order", order); err != nil {
		return err
	}

	if !opts.yes {
		ok, err := confirm(cmd.InOrStdin(), out, fmt.Sprintf("Create %s? [y/N] ", kindLabel(kind)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	result, err := svc.Intake.Create(ctx, order, kind)
	if err != nil {
		return err
	}
	if result.IsSimulation {
		fmt.Fprintf(out, "Catalog rejected the %s; showing a simulation (%v)\n", kindLabel(kind), result.FallbackReason)
	}
	return printJSON(out, "Result", result)
}

func readInputText(opts *reconcileOptions) (string, error) {
	if strings.TrimSpace(opts.text) != "" {
		return opts.text, nil
	}
	if opts.file == "" {
		return "", errNoInputText
	}
	data, err := os.ReadFile(filepath.Clean(opts.file))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", opts.file, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errNoInputText
	}
	return string(data), nil
}

func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprint(out, question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printJSON(out io.Writer, title string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s:\n%s\n", title, b)
	return nil
}

func kindLabel(k entities.OrderKind) string {
	if k == entities.OrderKindInvoice {
		return "vendor invoice"
	}
	return "purchase order"
}

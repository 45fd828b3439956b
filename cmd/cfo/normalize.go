package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/engine"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

func normalizeCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "normalize <statement.csv>",
		Short: "Normalize a spreadsheet statement export",
		Long: `Parse a CSV export of a financial statement, map its line items onto the
canonical vocabulary, detect the statement type and reporting period, and
compute headline KPIs. With --save the result is persisted for review.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}

			rows, err := readCSVRows(args[0])
			if err != nil {
				return err
			}

			if !save {
				result := engine.Normalize(engine.NormalizeInput{
					Now:      time.Now().UTC(),
					OwnerID:  owner,
					FileName: args[0],
					Rows:     rows,
				})
				printResult(result)
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			eng := engine.New(store, nil, nil)
			result, err := eng.ProcessRows(ctx, owner, args[0], rows)
			if err != nil {
				return fmt.Errorf("failed to normalize %s: %w", args[0], err)
			}
			printResult(result)

			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist the normalized document for review")

	return cmd
}

func printResult(result *engine.NormalizeResult) {
	doc := result.Document

	fmt.Printf("Document %s (%s)\n", doc.ID, doc.Type)
	fmt.Printf("Period:  %s to %s\n",
		doc.PeriodStart.Format("2006-01-02"),
		doc.PeriodEnd.Format("2006-01-02"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Label\tCanonical Key\tCategory\tValue\tConfidence\n")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 20),
		strings.Repeat("-", 16),
		strings.Repeat("-", 16),
		strings.Repeat("-", 12),
		strings.Repeat("-", 10))
	for _, m := range doc.Metrics {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\n",
			m.Label, m.CanonicalKey, m.Category, m.Value, m.Confidence)
	}
	_ = w.Flush()

	fmt.Println()
	printKPIs(result.KPIs)

	if unmapped := len(result.Raw) - len(doc.Metrics); unmapped > 0 {
		fmt.Printf("\n%d extracted line(s) did not match the canonical vocabulary.\n", unmapped)
	}
}

func printKPIs(k model.DocumentKPISet) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Revenue\t%.2f\n", k.RevenueTotal)
	fmt.Fprintf(w, "Expenses\t%.2f\n", k.ExpenseTotal)
	fmt.Fprintf(w, "Gross Profit\t%.2f\n", k.GrossProfit)
	fmt.Fprintf(w, "Net Income\t%.2f\n", k.NetIncome)
	fmt.Fprintf(w, "Gross Margin\t%.2f%%\n", k.GrossMarginPct)
	fmt.Fprintf(w, "Net Margin\t%.2f%%\n", k.NetMarginPct)
	_ = w.Flush()
}

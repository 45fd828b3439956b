package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/target"
)

func targetCmd() *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "target <amount>",
		Short: "Preview a monthly distribution of an annual target",
		Long: `Distribute an annual revenue amount across twelve months without touching
any stored plan. Without history the seasonal curve is used; --flat splits
the amount evenly with cent-exact rounding.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			var months [model.MonthsPerYear]float64
			if flat {
				months = target.EvenSplit(amount)
			} else {
				months = target.Distribute(amount, nil, nil)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			var total float64
			for i, v := range months {
				fmt.Fprintf(w, "%s\t%.2f\n", time.Month(i+1).String()[:3], v)
				total += v
			}
			fmt.Fprintf(w, "Total\t%.2f\n", total)
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "split evenly instead of using the seasonal curve")

	return cmd
}

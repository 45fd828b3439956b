package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/common"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/engine"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

func plansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage annual revenue plans",
		Long:  `Set annual revenue targets, record monthly actuals, and lock finished years.`,
	}

	cmd.AddCommand(setTargetCmd())
	cmd.AddCommand(addEntryCmd())
	cmd.AddCommand(showPlanCmd())
	cmd.AddCommand(lockPlanCmd())

	return cmd
}

func setTargetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-target <year> <amount>",
		Short: "Set a year's revenue target",
		Long:  `Set the annual revenue target for a year and distribute it across months.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}
			year, amount, err := parseYearAmount(args[0], args[1])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			plan, err := store.GetPlan(ctx, owner, year)
			if errors.Is(err, common.ErrNotFound) {
				plan = &model.YearRevenuePlan{OwnerID: owner, Year: year}
				err = nil
			}
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}

			plan.TargetRevenue = amount
			if err := store.SavePlan(ctx, plan); err != nil {
				return fmt.Errorf("failed to save plan: %w", err)
			}

			eng := engine.New(store, nil, nil)
			if err := eng.RecomputeTargets(ctx, owner, year); err != nil {
				return fmt.Errorf("failed to distribute target: %w", err)
			}

			fmt.Printf("Target for %d set to %.2f\n", year, amount)
			return nil
		},
	}
}

func addEntryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-entry <year> <month> <amount>",
		Short: "Record a month's actual revenue",
		Long:  `Record actual revenue for one month. Re-recording a month replaces the previous amount, and the year's monthly targets are redistributed around the new actuals.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}
			year, amount, err := parseYearAmount(args[0], args[2])
			if err != nil {
				return err
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpsertMonthlyEntry(ctx, owner, year, month, amount); err != nil {
				return fmt.Errorf("failed to record entry: %w", err)
			}

			eng := engine.New(store, nil, nil)
			if err := eng.RecomputeTargets(ctx, owner, year); err != nil {
				return fmt.Errorf("failed to redistribute targets: %w", err)
			}

			fmt.Printf("Recorded %.2f for %d-%02d\n", amount, year, month)
			return nil
		},
	}
}

func showPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [year]",
		Short: "Show a year's plan",
		Long:  `Display the annual target, monthly targets and recorded actuals for a year. Defaults to the current year.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}

			year := time.Now().Year()
			if len(args) == 1 {
				if year, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("invalid year %q: %w", args[0], err)
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			plan, err := store.GetPlan(ctx, owner, year)
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}

			fmt.Printf("Plan for %d (target %.2f", plan.Year, plan.TargetRevenue)
			if plan.Locked {
				fmt.Print(", locked")
			}
			fmt.Println(")")
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Month\tTarget\tActual\tVariance\n")
			for i := 0; i < model.MonthsPerYear; i++ {
				month := time.Month(i + 1)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%+.2f\n",
					month.String()[:3],
					plan.MonthlyTargets[i],
					plan.MonthlyActuals[i],
					plan.MonthlyActuals[i]-plan.MonthlyTargets[i])
			}
			fmt.Fprintf(w, "Total\t%.2f\t%.2f\t\n", plan.TargetRevenue, plan.TotalActual())
			return w.Flush()
		},
	}
}

func lockPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <year>",
		Short: "Lock a year's plan",
		Long:  `Freeze a finished year. Locked plans reject target and entry changes until unlocked in the database.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.LockPlan(ctx, owner, year); err != nil {
				return fmt.Errorf("failed to lock plan: %w", err)
			}

			fmt.Printf("Plan for %d locked\n", year)
			return nil
		},
	}
}

func parseYearAmount(yearArg, amountArg string) (int, float64, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q: %w", yearArg, err)
	}
	amount, err := strconv.ParseFloat(amountArg, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid amount %q: %w", amountArg, err)
	}
	return year, amount, nil
}

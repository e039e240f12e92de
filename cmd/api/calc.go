package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
	"klusmarkt/internal/domain/projections"
)

func newCommissionCmd() *cobra.Command {
	var (
		rate float64
		plan string
	)
	cmd := &cobra.Command{
		Use:   "commission <amount>",
		Short: "Split an amount into platform commission and craftsman net",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.Parse(args[0])
			if err != nil {
				return err
			}
			if plan != "" {
				terms, ok := entities.TermsFor(entities.Plan(plan))
				if !ok {
					return fmt.Errorf("unknown plan %q", plan)
				}
				rate = terms.CommissionRate
			}
			if rate < 0 || rate > 100 {
				return fmt.Errorf("rate must be between 0 and 100, got %v", rate)
			}
			return writeJSON(cmd.OutOrStdout(), projections.CommissionBreakdown(amount, rate))
		},
	}
	cmd.Flags().Float64Var(&rate, "rate", 15, "commission rate in percent")
	cmd.Flags().StringVar(&plan, "plan", "", "use the rate of a plan (free, professional, elite)")
	return cmd
}

func newInstallmentsCmd() *cobra.Command {
	var (
		n    int
		from string
	)
	cmd := &cobra.Command{
		Use:   "installments <total>",
		Short: "Print an installment schedule for a total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := money.Parse(args[0])
			if err != nil {
				return err
			}
			start := time.Now().UTC()
			if from != "" {
				if start, err = projections.ParseDate(from); err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
			}
			schedule, err := projections.InstallmentSchedule(total, n, start)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), schedule)
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 3, "number of installments")
	cmd.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD), defaults to today")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/capacity"
	"github.com/rocky-foreflight/ecs-cost-analysis/internal/pricing"
	"github.com/spf13/cobra"
)

var (
	// estimator can be injected for testing
	estimator capacity.Estimator
)

// capacityCmd represents the capacity command
var capacityCmd = &cobra.Command{
	Use:   "capacity <cluster> <instance-type>",
	Short: "Estimate excess capacity and potential savings for a cluster",
	Long: `Estimate how much of a cluster's EC2 capacity is unreserved and what it
costs, sized in units of the given instance type.

The command sums the registered and remaining CPU and memory across the
cluster's container instances, converts the excess into whole-instance
equivalents, and prices both the current fleet and the excess using a
built-in m5 family price table. Task-level reservation values are also
reported so odd sizes that never pack evenly stand out.

A YAML file given with --pricing-file extends or overrides the built-in
table, for other instance families or negotiated rates.

Examples:
  ecs-analysis capacity production m5.xlarge
  ecs-analysis capacity staging m5.large --pricing-file rates.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cluster := args[0]
		instanceType := args[1]
		ctx := context.Background()

		pricingFile, _ := cmd.Flags().GetString("pricing-file")

		e, err := getEstimator(cmd, pricingFile)
		if err != nil {
			return err
		}

		report, err := e.Estimate(ctx, cluster, instanceType)
		if err != nil {
			return fmt.Errorf("failed to estimate capacity: %w", err)
		}

		cmd.Print(capacity.FormatReport(report, getStyles(cmd)))
		return nil
	},
}

// getEstimator returns the estimator instance, creating a default one if none is set
func getEstimator(cmd *cobra.Command, pricingFile string) (capacity.Estimator, error) {
	if estimator != nil {
		return estimator, nil
	}

	table := pricing.DefaultTable()
	if pricingFile != "" {
		overlay, err := pricing.LoadFile(pricingFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load pricing file: %w", err)
		}
		table = table.Merge(overlay)
	}

	client, err := getClient(cmd)
	if err != nil {
		return nil, err
	}

	estimator = capacity.NewClusterEstimator(client.ECS(), client.Account(), table)
	return estimator, nil
}

// SetEstimator allows injection of an estimator (for testing)
func SetEstimator(e capacity.Estimator) {
	estimator = e
}

func init() {
	capacityCmd.Flags().String("pricing-file", "", "YAML file extending or overriding the built-in instance price table")

	rootCmd.AddCommand(capacityCmd)
}

/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/rocky-foreflight/ecs-cost-analysis/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ecs-analysis",
	Short: "A command-line tool for auditing ECS clusters and their CloudFormation stacks",
	Long: `ecs-analysis is a CLI tool for operational review of ECS infrastructure:

• Group CloudFormation stacks by description and template fingerprint
• Find EC2-based ECS services not managed by any CloudFormation stack
• Estimate excess cluster capacity and potential instance savings

Use ecs-analysis to spot template drift, orphaned services, and
over-provisioned clusters before they show up on the bill.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version.Short()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("region", "", "AWS region (overrides environment and shared config)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile (overrides environment)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable coloured output")
}

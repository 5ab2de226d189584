/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/unmanaged"
	"github.com/spf13/cobra"
)

var (
	// detector can be injected for testing
	detector unmanaged.Detector
)

// unmanagedCmd represents the unmanaged command
var unmanagedCmd = &cobra.Command{
	Use:   "unmanaged <cluster>",
	Short: "Find EC2-based ECS services not managed by CloudFormation",
	Long: `Find EC2-based ECS services in a cluster that are not associated with any
CloudFormation stack.

The command lists every service in the cluster, keeps those with launch
type EC2, and compares them against the ECS service resources of all
CloudFormation stacks. Service ARNs are normalised to the long
service/<cluster>/<service> form before comparison so stacks recorded with
the old short ARN format still match.

Stacks whose resources cannot be read are reported as warnings and
skipped, so a single broken stack does not abort the audit.

Examples:
  ecs-analysis unmanaged production
  ecs-analysis unmanaged staging --region us-west-2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cluster := args[0]
		ctx := context.Background()

		d, err := getDetector(cmd)
		if err != nil {
			return err
		}

		result, err := d.Detect(ctx, cluster)
		if err != nil {
			return fmt.Errorf("failed to detect unmanaged services: %w", err)
		}

		styles := getStyles(cmd)
		for _, warning := range result.Warnings {
			cmd.PrintErrln(styles.Warning.Render(fmt.Sprintf("Warning: %s", warning)))
		}

		cmd.Print(unmanaged.FormatResult(result, styles))
		return nil
	},
}

// getDetector returns the detector instance, creating a default one if none is set
func getDetector(cmd *cobra.Command) (unmanaged.Detector, error) {
	if detector != nil {
		return detector, nil
	}

	client, err := getClient(cmd)
	if err != nil {
		return nil, err
	}

	detector = unmanaged.NewServiceDetector(client.ECS(), client.CloudFormation())
	return detector, nil
}

// SetDetector allows injection of a detector (for testing)
func SetDetector(d unmanaged.Detector) {
	detector = d
}

func init() {
	rootCmd.AddCommand(unmanagedCmd)
}

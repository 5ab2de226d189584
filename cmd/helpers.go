/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/aws"
	"github.com/rocky-foreflight/ecs-cost-analysis/internal/report"
	"github.com/spf13/cobra"
)

var (
	// awsClient can be injected for testing
	awsClient aws.Client
)

// getClient returns the AWS client, creating a default one from the global
// flags if none is set
func getClient(cmd *cobra.Command) (aws.Client, error) {
	if awsClient != nil {
		return awsClient, nil
	}

	region, _ := cmd.Flags().GetString("region")
	profile, _ := cmd.Flags().GetString("profile")

	client, err := aws.NewDefaultClient(context.Background(), aws.Config{
		Region:  region,
		Profile: profile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}

	awsClient = client
	return awsClient, nil
}

// SetClient allows injection of an AWS client (for testing)
func SetClient(c aws.Client) {
	awsClient = c
}

// getStyles builds report styles honouring the --no-color flag and the
// terminal environment
func getStyles(cmd *cobra.Command) *report.Styles {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return report.NewStyles(!noColor && report.ShouldUseColour())
}

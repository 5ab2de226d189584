/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/group"
	"github.com/spf13/cobra"
)

var (
	// grouper can be injected for testing
	grouper group.Grouper
)

// templatesCmd represents the templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Group CloudFormation stacks by description and template hash",
	Long: `Group CloudFormation stacks that contain an ECS service by their
description and a SHA-256 hash of their template body.

Stacks deployed from the same template land in the same group, so a group
with many members is a template in wide use and a group of one is a
candidate for drift or a one-off. JSON templates are re-serialised with
sorted keys before hashing so formatting differences do not split groups.

Examples:
  ecs-analysis templates                        # All stacks with ECS services
  ecs-analysis templates -i deprecated          # Skip matching descriptions
  ecs-analysis templates --contains TaskRole    # Only templates mentioning TaskRole
  ecs-analysis templates --names-only           # Flat list of stack names`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ignore, _ := cmd.Flags().GetString("ignore")
		ignorePrefixes, _ := cmd.Flags().GetStringArray("ignore-prefix")
		contains, _ := cmd.Flags().GetString("contains")
		namesOnly, _ := cmd.Flags().GetBool("names-only")

		g, err := getGrouper(cmd)
		if err != nil {
			return err
		}

		groups, err := g.GroupStacks(ctx, group.Options{
			IgnoreSubstring: ignore,
			IgnorePrefixes:  ignorePrefixes,
			Contains:        contains,
		})
		if err != nil {
			return fmt.Errorf("failed to group stacks: %w", err)
		}

		cmd.Print(group.FormatGroups(groups, namesOnly, getStyles(cmd)))
		return nil
	},
}

// getGrouper returns the grouper instance, creating a default one if none is set
func getGrouper(cmd *cobra.Command) (group.Grouper, error) {
	if grouper != nil {
		return grouper, nil
	}

	client, err := getClient(cmd)
	if err != nil {
		return nil, err
	}

	grouper = group.NewStackGrouper(client.CloudFormation())
	return grouper, nil
}

// SetGrouper allows injection of a grouper (for testing)
func SetGrouper(g group.Grouper) {
	grouper = g
}

func init() {
	templatesCmd.Flags().StringP("ignore", "i", "", "skip stacks whose description contains this string")
	templatesCmd.Flags().StringArray("ignore-prefix", nil, "skip stacks whose description starts with this string (repeatable)")
	templatesCmd.Flags().String("contains", "", "only include stacks whose template body contains this string")
	templatesCmd.Flags().BoolP("names-only", "n", false, "print stack names only, without grouping")

	rootCmd.AddCommand(templatesCmd)
}

/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package unmanaged

import (
	"fmt"
	"strings"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/report"
)

// FormatResult formats a detection result for display.
func FormatResult(result *Result, styles *report.Styles) string {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Found %d total services (all launch types) in ECS cluster '%s'.\n",
		result.TotalServices, result.Cluster))
	output.WriteString(fmt.Sprintf("Of those, %d have launch type EC2.\n", len(result.EC2Services)))
	output.WriteString(fmt.Sprintf("Found %d CloudFormation stacks (excluding DELETE_COMPLETE).\n",
		result.StackCount))
	output.WriteString(fmt.Sprintf("Found %d ECS EC2 services in cluster '%s' that appear in CloudFormation.\n",
		result.ManagedInCluster, result.Cluster))

	if len(result.Unmanaged) == 0 {
		output.WriteString("\n")
		output.WriteString(styles.Success.Render(fmt.Sprintf(
			"All EC2-based ECS services in cluster '%s' are managed by CloudFormation stacks.", result.Cluster)))
		output.WriteString("\n")
		return output.String()
	}

	output.WriteString("\n")
	output.WriteString(styles.Heading.Render(fmt.Sprintf(
		"EC2-based ECS services in cluster '%s' not managed by any CloudFormation stack:", result.Cluster)))
	output.WriteString("\n")
	for _, service := range result.Unmanaged {
		output.WriteString(fmt.Sprintf("  %s\n", service))
	}

	return output.String()
}

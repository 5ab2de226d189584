/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package group

import (
	"fmt"
	"strings"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/report"
)

// FormatGroups formats template groups for display. With namesOnly set, only
// the member stack names are printed, one per line, without the group
// headers.
func FormatGroups(groups []Group, namesOnly bool, styles *report.Styles) string {
	var output strings.Builder

	if len(groups) == 0 {
		output.WriteString("No stacks with ECS services matched the filters.\n")
		return output.String()
	}

	if namesOnly {
		for _, group := range groups {
			for _, name := range group.StackNames {
				output.WriteString(name)
				output.WriteString("\n")
			}
		}
		return output.String()
	}

	output.WriteString(styles.Heading.Render("Unique CloudFormation stack descriptions (with AWS::ECS::Service):"))
	output.WriteString("\n")

	for _, group := range groups {
		description := group.Description
		if description == "" {
			description = styles.Subtle.Render("(no description)")
		}
		output.WriteString(fmt.Sprintf(" - %s (%s)\n", description, styles.Label.Render(ShortHash(group.TemplateHash))))
		for _, name := range group.StackNames {
			output.WriteString(fmt.Sprintf("    - %s\n", name))
		}
	}

	return output.String()
}

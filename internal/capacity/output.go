/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package capacity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/report"
)

// FormatReport formats a capacity report for display.
func FormatReport(r *Report, styles *report.Styles) string {
	var output strings.Builder

	output.WriteString(styles.Heading.Render(fmt.Sprintf("%s:", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))))
	output.WriteString("\n")
	output.WriteString(fmt.Sprintf("  %s : %s ECS cluster\n",
		styles.Label.Render(fmt.Sprintf("%-12s", "cluster name")), r.Cluster))
	output.WriteString(fmt.Sprintf("  %s : %s\n",
		styles.Label.Render(fmt.Sprintf("%-12s", "account")), formatAccount(r)))
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("%s CPU units: %d\n", r.InstanceType, r.Profile.CPUUnits()))
	output.WriteString(fmt.Sprintf("%s memory: %d\n", r.InstanceType, r.Profile.MemoryMiB()))
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("Largest task CPU units: %d\n", r.LargestTaskCPU))
	output.WriteString(fmt.Sprintf("Largest task memory: %d\n", r.LargestTaskMemory))
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("Unique CPU unit values: %s\n", formatValues(r.UniqueTaskCPUs)))
	output.WriteString(fmt.Sprintf("Unique memory values: %s\n", formatValues(r.UniqueTaskMemories)))
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("Total vCPUs: %.0f, Total Memory: %.0f GiB\n",
		float64(r.TotalCPU)/1024, float64(r.TotalMemory)/1024))
	output.WriteString(fmt.Sprintf("Used vCPUs: %.0f, Used Memory: %.0f GiB\n",
		float64(r.UsedCPU)/1024, float64(r.UsedMemory)/1024))
	output.WriteString(fmt.Sprintf("Excess vCPUs: %.0f, Excess Memory: %.0f GiB\n",
		float64(r.ExcessCPU())/1024, float64(r.ExcessMemory())/1024))
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("Current Cost: $%.0f/hr OR $%.0f/mo\n",
		r.CurrentHourlyCost(), r.CurrentHourlyCost()*HoursPerMonth))
	output.WriteString(fmt.Sprintf("An excess of %.1f %s instances worth of compute\n",
		r.ExcessInstances(), r.InstanceType))
	output.WriteString(styles.Success.Render(fmt.Sprintf("Potential Savings: $%.0f/hr OR $%.0f/mo",
		r.PotentialHourlySavings(), r.PotentialHourlySavings()*HoursPerMonth)))
	output.WriteString("\n")

	return output.String()
}

func formatAccount(r *Report) string {
	if r.AccountName == "" {
		return r.AccountID
	}
	return fmt.Sprintf("%s (%s)", r.AccountName, r.AccountID)
}

func formatValues(values []int64) string {
	if len(values) == 0 {
		return "(none)"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ", ")
}

/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package capacity estimates excess capacity and potential savings for an
// ECS cluster backed by EC2 container instances.
package capacity

import (
	"context"
	"sort"
	"time"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/aws"
	"github.com/rocky-foreflight/ecs-cost-analysis/internal/pricing"
)

// HoursPerMonth is the averaged hours used for monthly cost projections.
const HoursPerMonth = 730

// Report holds the measured cluster state. Derived figures (excess, fit
// counts, costs) are computed by methods so they always agree with the
// measurements.
type Report struct {
	Cluster     string
	GeneratedAt time.Time

	AccountID string
	// AccountName is the Organizations display name; empty when the
	// account is not part of an organization.
	AccountName string

	InstanceType string
	Profile      pricing.InstanceTypeProfile

	// InstanceCount is the number of registered container instances.
	InstanceCount int

	// Largest task-level reservations across the cluster's tasks, in CPU
	// units and MiB.
	LargestTaskCPU    int64
	LargestTaskMemory int64

	// Distinct task-level reservation values, sorted. Values that are not
	// multiples of 1024 can never pack evenly onto an instance.
	UniqueTaskCPUs     []int64
	UniqueTaskMemories []int64

	// Cluster-wide resource totals in CPU units and MiB.
	TotalCPU    int64
	TotalMemory int64
	UsedCPU     int64
	UsedMemory  int64
}

// ExcessCPU returns the unreserved CPU units across the cluster.
func (r *Report) ExcessCPU() int64 {
	return r.TotalCPU - r.UsedCPU
}

// ExcessMemory returns the unreserved MiB of memory across the cluster.
func (r *Report) ExcessMemory() int64 {
	return r.TotalMemory - r.UsedMemory
}

// ExcessInstances estimates how many instances of the report's type the
// excess capacity amounts to. The larger of the CPU-bound and memory-bound
// estimates is used: removing that many instances would exhaust at least one
// dimension.
func (r *Report) ExcessInstances() float64 {
	byCPU := float64(r.ExcessCPU()) / float64(r.Profile.CPUUnits())
	byMemory := float64(r.ExcessMemory()) / float64(r.Profile.MemoryMiB())
	return max(byCPU, byMemory)
}

// CurrentHourlyCost returns the cluster's hourly instance cost, assuming
// every container instance is of the report's type.
func (r *Report) CurrentHourlyCost() float64 {
	return float64(r.InstanceCount) * r.Profile.HourlyCost
}

// PotentialHourlySavings returns the hourly cost of the excess instances.
func (r *Report) PotentialHourlySavings() float64 {
	return r.ExcessInstances() * r.Profile.HourlyCost
}

// Estimator produces capacity reports
type Estimator interface {
	Estimate(ctx context.Context, cluster, instanceType string) (*Report, error)
}

// ClusterEstimator implements Estimator using ECS and account operations
type ClusterEstimator struct {
	ecsOps  aws.ECSOperations
	acctOps aws.AccountOperations
	table   pricing.Table
}

// NewClusterEstimator creates an estimator with the provided operations and
// pricing table
func NewClusterEstimator(ecsOps aws.ECSOperations, acctOps aws.AccountOperations, table pricing.Table) *ClusterEstimator {
	return &ClusterEstimator{ecsOps: ecsOps, acctOps: acctOps, table: table}
}

// Estimate measures the cluster's registered and reserved resources and
// sizes the excess against the given instance type.
func (e *ClusterEstimator) Estimate(ctx context.Context, cluster, instanceType string) (*Report, error) {
	profile, err := e.table.Lookup(instanceType)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Cluster:      cluster,
		GeneratedAt:  time.Now().UTC(),
		InstanceType: instanceType,
		Profile:      profile,
	}

	identity, err := e.acctOps.GetCallerIdentity(ctx)
	if err != nil {
		return nil, err
	}
	report.AccountID = identity.AccountID

	// The display name needs Organizations access; standalone accounts
	// get just the ID
	if account, err := e.acctOps.DescribeAccount(ctx, identity.AccountID); err == nil {
		report.AccountName = account.Name
	}

	taskARNs, err := e.ecsOps.ListTasks(ctx, cluster)
	if err != nil {
		return nil, err
	}
	tasks, err := e.ecsOps.DescribeTasks(ctx, cluster, taskARNs)
	if err != nil {
		return nil, err
	}
	summarizeTasks(report, tasks)

	instanceARNs, err := e.ecsOps.ListContainerInstances(ctx, cluster)
	if err != nil {
		return nil, err
	}
	instances, err := e.ecsOps.DescribeContainerInstances(ctx, cluster, instanceARNs)
	if err != nil {
		return nil, err
	}

	report.InstanceCount = len(instances)
	for _, instance := range instances {
		report.TotalCPU += instance.RegisteredCPU
		report.TotalMemory += instance.RegisteredMemory
		report.UsedCPU += instance.UsedCPU()
		report.UsedMemory += instance.UsedMemory()
	}

	return report, nil
}

// summarizeTasks fills in the largest and distinct task reservation values.
func summarizeTasks(report *Report, tasks []aws.Task) {
	cpuValues := make(map[int64]struct{})
	memoryValues := make(map[int64]struct{})

	for _, task := range tasks {
		cpuValues[task.CPU] = struct{}{}
		memoryValues[task.Memory] = struct{}{}
		report.LargestTaskCPU = max(report.LargestTaskCPU, task.CPU)
		report.LargestTaskMemory = max(report.LargestTaskMemory, task.Memory)
	}

	report.UniqueTaskCPUs = sortedValues(cpuValues)
	report.UniqueTaskMemories = sortedValues(memoryValues)
}

func sortedValues(set map[int64]struct{}) []int64 {
	values := make([]int64, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

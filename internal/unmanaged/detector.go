/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package unmanaged finds EC2-launch-type ECS services in a cluster that no
// CloudFormation stack claims as a resource.
package unmanaged

import (
	"context"
	"fmt"
	"sort"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/arn"
	"github.com/rocky-foreflight/ecs-cost-analysis/internal/aws"
)

// Result holds the detection outcome plus the intermediate counts the report
// prints.
type Result struct {
	Cluster string

	// TotalServices counts services of every launch type in the cluster.
	TotalServices int

	// EC2Services are the cluster's EC2-launch-type services, as
	// normalized long-form ARNs, sorted.
	EC2Services []string

	// StackCount counts the CloudFormation stacks inspected (excluding
	// DELETE_COMPLETE).
	StackCount int

	// ManagedInCluster counts the cluster's EC2 services that appear in
	// some stack.
	ManagedInCluster int

	// Unmanaged are EC2 services no stack claims, as normalized long-form
	// ARNs, sorted.
	Unmanaged []string

	// Warnings holds non-fatal per-stack failures encountered while
	// enumerating stack resources.
	Warnings []string
}

// Detector finds unmanaged ECS services
type Detector interface {
	Detect(ctx context.Context, cluster string) (*Result, error)
}

// ServiceDetector implements Detector using ECS and CloudFormation
// operations
type ServiceDetector struct {
	ecsOps aws.ECSOperations
	cfnOps aws.CloudFormationOperations
}

// NewServiceDetector creates a detector with the provided operations
func NewServiceDetector(ecsOps aws.ECSOperations, cfnOps aws.CloudFormationOperations) *ServiceDetector {
	return &ServiceDetector{ecsOps: ecsOps, cfnOps: cfnOps}
}

// Detect lists the cluster's EC2 services and subtracts the set of ECS
// service resources found across all CloudFormation stacks. Both sides are
// normalized to long-form ARNs before comparison, and the CloudFormation set
// is intersected with the cluster's services first so services owned by
// stacks in other clusters are never reported.
func (d *ServiceDetector) Detect(ctx context.Context, cluster string) (*Result, error) {
	result := &Result{Cluster: cluster}

	serviceARNs, err := d.ecsOps.ListServices(ctx, cluster)
	if err != nil {
		return nil, err
	}
	result.TotalServices = len(serviceARNs)

	services, err := d.ecsOps.DescribeServices(ctx, cluster, serviceARNs)
	if err != nil {
		return nil, err
	}

	ec2Services := make(map[string]struct{})
	for _, service := range services {
		if service.LaunchType != aws.LaunchTypeEC2 {
			continue
		}
		ec2Services[arn.NormalizeServiceARN(service.ARN, cluster)] = struct{}{}
	}
	result.EC2Services = sortedKeys(ec2Services)

	stacks, err := d.cfnOps.ListStacks(ctx)
	if err != nil {
		return nil, err
	}
	result.StackCount = len(stacks)

	managed := make(map[string]struct{})
	for _, stack := range stacks {
		// The stack ID stays resolvable even if the name was reused
		resources, err := d.cfnOps.DescribeStackResources(ctx, stack.ID)
		if err != nil {
			// Per-stack failures are non-fatal; the stack is skipped
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not describe resources for stack %s: %v", stack.ID, err))
			continue
		}

		for _, resource := range resources {
			if resource.Type != aws.ResourceTypeECSService {
				continue
			}
			managed[arn.NormalizeServiceARN(resource.PhysicalID, cluster)] = struct{}{}
		}
	}

	unmanaged := make(map[string]struct{})
	for service := range ec2Services {
		if _, ok := managed[service]; ok {
			result.ManagedInCluster++
			continue
		}
		unmanaged[service] = struct{}{}
	}
	result.Unmanaged = sortedKeys(unmanaged)

	return result, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

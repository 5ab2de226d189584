/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// LaunchTypeEC2 is the ECS launch type for services scheduled onto EC2
// container instances.
const LaunchTypeEC2 = "EC2"

// API batch limits for the ECS describe calls
const (
	listServicesPageSize        = 100
	describeServicesBatchSize   = 10
	describeTasksBatchSize      = 100
	describeInstancesBatchSize  = 100
	instanceTypeAttributeName   = "ecs.instance-type"
	resourceNameCPU             = "CPU"
	resourceNameMemory          = "MEMORY"
)

// Service represents an ECS service with the fields the reports need.
type Service struct {
	ARN        string
	Name       string
	LaunchType string
	Status     string
}

// Task represents a running ECS task. CPU is in CPU units (1024 per vCPU),
// Memory in MiB; zero means the task definition does not set a task-level
// value.
type Task struct {
	ARN    string
	CPU    int64
	Memory int64
}

// ContainerInstance represents an EC2 instance registered with a cluster.
// Resource values are in ECS units: CPU units and MiB of memory.
type ContainerInstance struct {
	ARN              string
	EC2InstanceID    string
	InstanceType     string
	RegisteredCPU    int64
	RegisteredMemory int64
	RemainingCPU     int64
	RemainingMemory  int64
}

// UsedCPU returns the CPU units currently reserved on this instance.
func (ci ContainerInstance) UsedCPU() int64 {
	return ci.RegisteredCPU - ci.RemainingCPU
}

// UsedMemory returns the MiB of memory currently reserved on this instance.
func (ci ContainerInstance) UsedMemory() int64 {
	return ci.RegisteredMemory - ci.RemainingMemory
}

// DefaultECSOperations provides ECS-specific operations
type DefaultECSOperations struct {
	client ECSAPI
}

// NewECSOperations creates an operations wrapper around the given client
// (the real SDK client or a mock).
func NewECSOperations(client ECSAPI) *DefaultECSOperations {
	return &DefaultECSOperations{client: client}
}

// ListServices returns the ARNs of all services in the cluster, across all
// launch types.
func (e *DefaultECSOperations) ListServices(ctx context.Context, cluster string) ([]string, error) {
	var serviceARNs []string
	paginator := ecs.NewListServicesPaginator(e.client, &ecs.ListServicesInput{
		Cluster:    aws.String(cluster),
		MaxResults: aws.Int32(listServicesPageSize),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list services in cluster %s: %w", cluster, err)
		}
		serviceARNs = append(serviceARNs, page.ServiceArns...)
	}

	return serviceARNs, nil
}

// DescribeServices describes the given services, batching requests at the
// API limit of 10 services per call.
func (e *DefaultECSOperations) DescribeServices(ctx context.Context, cluster string, serviceARNs []string) ([]Service, error) {
	services := make([]Service, 0, len(serviceARNs))

	for batch := range slices.Chunk(serviceARNs, describeServicesBatchSize) {
		result, err := e.client.DescribeServices(ctx, &ecs.DescribeServicesInput{
			Cluster:  aws.String(cluster),
			Services: batch,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe services in cluster %s: %w", cluster, err)
		}

		for _, svc := range result.Services {
			services = append(services, Service{
				ARN:        aws.ToString(svc.ServiceArn),
				Name:       aws.ToString(svc.ServiceName),
				LaunchType: string(svc.LaunchType),
				Status:     aws.ToString(svc.Status),
			})
		}
	}

	return services, nil
}

// ListTasks returns the ARNs of all running tasks in the cluster.
func (e *DefaultECSOperations) ListTasks(ctx context.Context, cluster string) ([]string, error) {
	var taskARNs []string
	paginator := ecs.NewListTasksPaginator(e.client, &ecs.ListTasksInput{
		Cluster: aws.String(cluster),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks in cluster %s: %w", cluster, err)
		}
		taskARNs = append(taskARNs, page.TaskArns...)
	}

	return taskARNs, nil
}

// DescribeTasks describes the given tasks, batching requests at the API
// limit of 100 tasks per call.
func (e *DefaultECSOperations) DescribeTasks(ctx context.Context, cluster string, taskARNs []string) ([]Task, error) {
	tasks := make([]Task, 0, len(taskARNs))

	for batch := range slices.Chunk(taskARNs, describeTasksBatchSize) {
		result, err := e.client.DescribeTasks(ctx, &ecs.DescribeTasksInput{
			Cluster: aws.String(cluster),
			Tasks:   batch,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe tasks in cluster %s: %w", cluster, err)
		}

		for _, task := range result.Tasks {
			tasks = append(tasks, Task{
				ARN:    aws.ToString(task.TaskArn),
				CPU:    parseResourceString(task.Cpu),
				Memory: parseResourceString(task.Memory),
			})
		}
	}

	return tasks, nil
}

// ListContainerInstances returns the ARNs of all container instances
// registered with the cluster.
func (e *DefaultECSOperations) ListContainerInstances(ctx context.Context, cluster string) ([]string, error) {
	var instanceARNs []string
	paginator := ecs.NewListContainerInstancesPaginator(e.client, &ecs.ListContainerInstancesInput{
		Cluster: aws.String(cluster),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list container instances in cluster %s: %w", cluster, err)
		}
		instanceARNs = append(instanceARNs, page.ContainerInstanceArns...)
	}

	return instanceARNs, nil
}

// DescribeContainerInstances describes the given container instances,
// batching requests at the API limit of 100 instances per call.
func (e *DefaultECSOperations) DescribeContainerInstances(ctx context.Context, cluster string, instanceARNs []string) ([]ContainerInstance, error) {
	instances := make([]ContainerInstance, 0, len(instanceARNs))

	for batch := range slices.Chunk(instanceARNs, describeInstancesBatchSize) {
		result, err := e.client.DescribeContainerInstances(ctx, &ecs.DescribeContainerInstancesInput{
			Cluster:            aws.String(cluster),
			ContainerInstances: batch,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe container instances in cluster %s: %w", cluster, err)
		}

		for _, instance := range result.ContainerInstances {
			instances = append(instances, ContainerInstance{
				ARN:              aws.ToString(instance.ContainerInstanceArn),
				EC2InstanceID:    aws.ToString(instance.Ec2InstanceId),
				InstanceType:     attributeValue(instance.Attributes, instanceTypeAttributeName),
				RegisteredCPU:    resourceValue(instance.RegisteredResources, resourceNameCPU),
				RegisteredMemory: resourceValue(instance.RegisteredResources, resourceNameMemory),
				RemainingCPU:     resourceValue(instance.RemainingResources, resourceNameCPU),
				RemainingMemory:  resourceValue(instance.RemainingResources, resourceNameMemory),
			})
		}
	}

	return instances, nil
}

// resourceValue returns the integer value of the named resource. ECS always
// reports CPU and MEMORY as INTEGER resources.
func resourceValue(resources []types.Resource, name string) int64 {
	for _, resource := range resources {
		if aws.ToString(resource.Name) == name {
			return int64(resource.IntegerValue)
		}
	}
	return 0
}

// attributeValue returns the value of the named container instance attribute.
func attributeValue(attributes []types.Attribute, name string) string {
	for _, attribute := range attributes {
		if aws.ToString(attribute.Name) == name {
			return aws.ToString(attribute.Value)
		}
	}
	return ""
}

// parseResourceString parses the numeric strings ECS uses for task-level CPU
// and memory. Tasks without a task-level value report an empty string, which
// parses to zero.
func parseResourceString(value *string) int64 {
	parsed, err := strconv.ParseInt(aws.ToString(value), 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

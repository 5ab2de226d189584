/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListServices_FollowsPagination(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockECSAPI{}
	ecsOps := NewECSOperations(mockClient)

	firstPage := &ecs.ListServicesOutput{
		ServiceArns: []string{"arn:aws:ecs:us-east-1:123:service/main/web"},
		NextToken:   aws.String("page-2"),
	}
	secondPage := &ecs.ListServicesOutput{
		ServiceArns: []string{"arn:aws:ecs:us-east-1:123:service/main/api"},
	}
	mockClient.On("ListServices", ctx, mock.MatchedBy(func(input *ecs.ListServicesInput) bool {
		return aws.ToString(input.Cluster) == "main" && input.NextToken == nil
	})).Return(firstPage, nil).Once()
	mockClient.On("ListServices", ctx, mock.MatchedBy(func(input *ecs.ListServicesInput) bool {
		return aws.ToString(input.NextToken) == "page-2"
	})).Return(secondPage, nil).Once()

	serviceARNs, err := ecsOps.ListServices(ctx, "main")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"arn:aws:ecs:us-east-1:123:service/main/web",
		"arn:aws:ecs:us-east-1:123:service/main/api",
	}, serviceARNs)
	mockClient.AssertExpectations(t)
}

func TestDescribeServices_BatchesAtTen(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockECSAPI{}
	ecsOps := NewECSOperations(mockClient)

	serviceARNs := make([]string, 25)
	for i := range serviceARNs {
		serviceARNs[i] = fmt.Sprintf("arn:aws:ecs:us-east-1:123:service/main/svc-%02d", i)
	}

	var batchSizes []int
	mockClient.On("DescribeServices", ctx, mock.AnythingOfType("*ecs.DescribeServicesInput")).
		Run(func(args mock.Arguments) {
			input := args.Get(1).(*ecs.DescribeServicesInput)
			batchSizes = append(batchSizes, len(input.Services))
		}).
		Return(&ecs.DescribeServicesOutput{
			Services: []types.Service{
				{
					ServiceArn:  aws.String("arn:aws:ecs:us-east-1:123:service/main/svc-00"),
					ServiceName: aws.String("svc-00"),
					LaunchType:  types.LaunchTypeEc2,
					Status:      aws.String("ACTIVE"),
				},
			},
		}, nil).
		Times(3)

	services, err := ecsOps.DescribeServices(ctx, "main", serviceARNs)

	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 5}, batchSizes)
	assert.Len(t, services, 3)
	assert.Equal(t, LaunchTypeEC2, services[0].LaunchType)
	mockClient.AssertExpectations(t)
}

func TestDescribeServices_NoServices_NoAPICall(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockECSAPI{}
	ecsOps := NewECSOperations(mockClient)

	services, err := ecsOps.DescribeServices(ctx, "main", nil)

	require.NoError(t, err)
	assert.Empty(t, services)
	mockClient.AssertNotCalled(t, "DescribeServices")
}

func TestDescribeTasks_ParsesResourceStrings(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockECSAPI{}
	ecsOps := NewECSOperations(mockClient)

	output := &ecs.DescribeTasksOutput{
		Tasks: []types.Task{
			{
				TaskArn: aws.String("arn:aws:ecs:us-east-1:123:task/main/aaa"),
				Cpu:     aws.String("512"),
				Memory:  aws.String("1024"),
			},
			{
				// Task without task-level limits
				TaskArn: aws.String("arn:aws:ecs:us-east-1:123:task/main/bbb"),
			},
		},
	}
	mockClient.On("DescribeTasks", ctx, mock.AnythingOfType("*ecs.DescribeTasksInput")).
		Return(output, nil)

	tasks, err := ecsOps.DescribeTasks(ctx, "main", []string{"aaa", "bbb"})

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(512), tasks[0].CPU)
	assert.Equal(t, int64(1024), tasks[0].Memory)
	assert.Zero(t, tasks[1].CPU)
	assert.Zero(t, tasks[1].Memory)
}

func TestDescribeContainerInstances_ExtractsResourcesByName(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockECSAPI{}
	ecsOps := NewECSOperations(mockClient)

	output := &ecs.DescribeContainerInstancesOutput{
		ContainerInstances: []types.ContainerInstance{
			{
				ContainerInstanceArn: aws.String("arn:aws:ecs:us-east-1:123:container-instance/main/ccc"),
				Ec2InstanceId:        aws.String("i-0abc123"),
				Attributes: []types.Attribute{
					{Name: aws.String("ecs.ami-id"), Value: aws.String("ami-123")},
					{Name: aws.String("ecs.instance-type"), Value: aws.String("m5.xlarge")},
				},
				// MEMORY listed before CPU to prove lookup is by name,
				// not position
				RegisteredResources: []types.Resource{
					{Name: aws.String("MEMORY"), Type: aws.String("INTEGER"), IntegerValue: 15743},
					{Name: aws.String("CPU"), Type: aws.String("INTEGER"), IntegerValue: 4096},
				},
				RemainingResources: []types.Resource{
					{Name: aws.String("CPU"), Type: aws.String("INTEGER"), IntegerValue: 1024},
					{Name: aws.String("MEMORY"), Type: aws.String("INTEGER"), IntegerValue: 4000},
				},
			},
		},
	}
	mockClient.On("DescribeContainerInstances", ctx, mock.AnythingOfType("*ecs.DescribeContainerInstancesInput")).
		Return(output, nil)

	instances, err := ecsOps.DescribeContainerInstances(ctx, "main", []string{"ccc"})

	require.NoError(t, err)
	require.Len(t, instances, 1)
	instance := instances[0]
	assert.Equal(t, "i-0abc123", instance.EC2InstanceID)
	assert.Equal(t, "m5.xlarge", instance.InstanceType)
	assert.Equal(t, int64(4096), instance.RegisteredCPU)
	assert.Equal(t, int64(15743), instance.RegisteredMemory)
	assert.Equal(t, int64(3072), instance.UsedCPU())
	assert.Equal(t, int64(11743), instance.UsedMemory())
}

func TestListTasks_Error(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockECSAPI{}
	ecsOps := NewECSOperations(mockClient)

	mockClient.On("ListTasks", ctx, mock.AnythingOfType("*ecs.ListTasksInput")).
		Return(nil, errors.New("cluster not found"))

	_, err := ecsOps.ListTasks(ctx, "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list tasks in cluster missing")
}

/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CloudFormationAPI is the subset of the CloudFormation client these tools
// call. A narrow interface keeps mock implementations small.
type CloudFormationAPI interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	ListStackResources(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error)
	DescribeStackResources(ctx context.Context, params *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error)
	GetTemplate(ctx context.Context, params *cloudformation.GetTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateOutput, error)
}

// ECSAPI is the subset of the ECS client these tools call.
type ECSAPI interface {
	ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error)
	DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error)
	ListTasks(ctx context.Context, params *ecs.ListTasksInput, optFns ...func(*ecs.Options)) (*ecs.ListTasksOutput, error)
	DescribeTasks(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error)
	ListContainerInstances(ctx context.Context, params *ecs.ListContainerInstancesInput, optFns ...func(*ecs.Options)) (*ecs.ListContainerInstancesOutput, error)
	DescribeContainerInstances(ctx context.Context, params *ecs.DescribeContainerInstancesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeContainerInstancesOutput, error)
}

// STSAPI is the subset of the STS client used for account identification.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// OrganizationsAPI is the subset of the Organizations client used to resolve
// account display names.
type OrganizationsAPI interface {
	DescribeAccount(ctx context.Context, params *organizations.DescribeAccountInput, optFns ...func(*organizations.Options)) (*organizations.DescribeAccountOutput, error)
}

// Ensure the real SDK clients satisfy the narrow interfaces
var _ CloudFormationAPI = (*cloudformation.Client)(nil)
var _ ECSAPI = (*ecs.Client)(nil)
var _ STSAPI = (*sts.Client)(nil)
var _ OrganizationsAPI = (*organizations.Client)(nil)

// Ensure the default implementations satisfy the operations interfaces
var _ CloudFormationOperations = (*DefaultCloudFormationOperations)(nil)
var _ ECSOperations = (*DefaultECSOperations)(nil)
var _ AccountOperations = (*DefaultAccountOperations)(nil)
var _ Client = (*DefaultClient)(nil)

// CloudFormationOperations defines the CloudFormation operations used by the
// reporting commands. Pagination happens inside the implementation; callers
// always see complete result sets.
type CloudFormationOperations interface {
	// ListStacks returns all stacks except those in DELETE_COMPLETE.
	ListStacks(ctx context.Context) ([]*Stack, error)
	// ListStackResources returns all resource summaries for a stack.
	ListStackResources(ctx context.Context, stackName string) ([]StackResource, error)
	// DescribeStackResources returns the resources of a stack in one call.
	DescribeStackResources(ctx context.Context, stackName string) ([]StackResource, error)
	// GetTemplate returns the original template body for a stack.
	GetTemplate(ctx context.Context, stackName string) (string, error)
}

// ECSOperations defines the ECS operations used by the reporting commands.
// Describe calls are batched internally at the API's documented limits.
type ECSOperations interface {
	ListServices(ctx context.Context, cluster string) ([]string, error)
	DescribeServices(ctx context.Context, cluster string, serviceARNs []string) ([]Service, error)
	ListTasks(ctx context.Context, cluster string) ([]string, error)
	DescribeTasks(ctx context.Context, cluster string, taskARNs []string) ([]Task, error)
	ListContainerInstances(ctx context.Context, cluster string) ([]string, error)
	DescribeContainerInstances(ctx context.Context, cluster string, instanceARNs []string) ([]ContainerInstance, error)
}

// AccountOperations resolves the calling account's identity and display name.
type AccountOperations interface {
	GetCallerIdentity(ctx context.Context) (*CallerIdentity, error)
	DescribeAccount(ctx context.Context, accountID string) (*Account, error)
}

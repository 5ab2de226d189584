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
	"github.com/stretchr/testify/mock"
)

// MockClient implements Client for testing
type MockClient struct {
	mock.Mock
}

func (m *MockClient) CloudFormation() CloudFormationOperations {
	args := m.Called()
	return args.Get(0).(CloudFormationOperations)
}

func (m *MockClient) ECS() ECSOperations {
	args := m.Called()
	return args.Get(0).(ECSOperations)
}

func (m *MockClient) Account() AccountOperations {
	args := m.Called()
	return args.Get(0).(AccountOperations)
}

func (m *MockClient) Region() string {
	args := m.Called()
	return args.String(0)
}

// MockCloudFormationOperations implements CloudFormationOperations for testing
type MockCloudFormationOperations struct {
	mock.Mock
}

func (m *MockCloudFormationOperations) ListStacks(ctx context.Context) ([]*Stack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Stack), args.Error(1)
}

func (m *MockCloudFormationOperations) ListStackResources(ctx context.Context, stackName string) ([]StackResource, error) {
	args := m.Called(ctx, stackName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StackResource), args.Error(1)
}

func (m *MockCloudFormationOperations) DescribeStackResources(ctx context.Context, stackName string) ([]StackResource, error) {
	args := m.Called(ctx, stackName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StackResource), args.Error(1)
}

func (m *MockCloudFormationOperations) GetTemplate(ctx context.Context, stackName string) (string, error) {
	args := m.Called(ctx, stackName)
	return args.String(0), args.Error(1)
}

// MockECSOperations implements ECSOperations for testing
type MockECSOperations struct {
	mock.Mock
}

func (m *MockECSOperations) ListServices(ctx context.Context, cluster string) ([]string, error) {
	args := m.Called(ctx, cluster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockECSOperations) DescribeServices(ctx context.Context, cluster string, serviceARNs []string) ([]Service, error) {
	args := m.Called(ctx, cluster, serviceARNs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Service), args.Error(1)
}

func (m *MockECSOperations) ListTasks(ctx context.Context, cluster string) ([]string, error) {
	args := m.Called(ctx, cluster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockECSOperations) DescribeTasks(ctx context.Context, cluster string, taskARNs []string) ([]Task, error) {
	args := m.Called(ctx, cluster, taskARNs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Task), args.Error(1)
}

func (m *MockECSOperations) ListContainerInstances(ctx context.Context, cluster string) ([]string, error) {
	args := m.Called(ctx, cluster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockECSOperations) DescribeContainerInstances(ctx context.Context, cluster string, instanceARNs []string) ([]ContainerInstance, error) {
	args := m.Called(ctx, cluster, instanceARNs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ContainerInstance), args.Error(1)
}

// MockAccountOperations implements AccountOperations for testing
type MockAccountOperations struct {
	mock.Mock
}

func (m *MockAccountOperations) GetCallerIdentity(ctx context.Context) (*CallerIdentity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CallerIdentity), args.Error(1)
}

func (m *MockAccountOperations) DescribeAccount(ctx context.Context, accountID string) (*Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

// MockCloudFormationAPI implements CloudFormationAPI for testing the
// operations wrappers against SDK-level responses
type MockCloudFormationAPI struct {
	mock.Mock
}

func (m *MockCloudFormationAPI) DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeStacksOutput), args.Error(1)
}

func (m *MockCloudFormationAPI) ListStackResources(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.ListStackResourcesOutput), args.Error(1)
}

func (m *MockCloudFormationAPI) DescribeStackResources(ctx context.Context, params *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeStackResourcesOutput), args.Error(1)
}

func (m *MockCloudFormationAPI) GetTemplate(ctx context.Context, params *cloudformation.GetTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.GetTemplateOutput), args.Error(1)
}

// MockECSAPI implements ECSAPI for testing the operations wrappers against
// SDK-level responses
type MockECSAPI struct {
	mock.Mock
}

func (m *MockECSAPI) ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ecs.ListServicesOutput), args.Error(1)
}

func (m *MockECSAPI) DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ecs.DescribeServicesOutput), args.Error(1)
}

func (m *MockECSAPI) ListTasks(ctx context.Context, params *ecs.ListTasksInput, optFns ...func(*ecs.Options)) (*ecs.ListTasksOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ecs.ListTasksOutput), args.Error(1)
}

func (m *MockECSAPI) DescribeTasks(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ecs.DescribeTasksOutput), args.Error(1)
}

func (m *MockECSAPI) ListContainerInstances(ctx context.Context, params *ecs.ListContainerInstancesInput, optFns ...func(*ecs.Options)) (*ecs.ListContainerInstancesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ecs.ListContainerInstancesOutput), args.Error(1)
}

func (m *MockECSAPI) DescribeContainerInstances(ctx context.Context, params *ecs.DescribeContainerInstancesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeContainerInstancesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ecs.DescribeContainerInstancesOutput), args.Error(1)
}

// MockSTSAPI implements STSAPI for testing
type MockSTSAPI struct {
	mock.Mock
}

func (m *MockSTSAPI) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sts.GetCallerIdentityOutput), args.Error(1)
}

// MockOrganizationsAPI implements OrganizationsAPI for testing
type MockOrganizationsAPI struct {
	mock.Mock
}

func (m *MockOrganizationsAPI) DescribeAccount(ctx context.Context, params *organizations.DescribeAccountInput, optFns ...func(*organizations.Options)) (*organizations.DescribeAccountOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organizations.DescribeAccountOutput), args.Error(1)
}

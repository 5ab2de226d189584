/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// ResourceTypeECSService is the CloudFormation resource type identifying an
// ECS service in a stack.
const ResourceTypeECSService = "AWS::ECS::Service"

// Stack represents a CloudFormation stack with the fields the reports need.
type Stack struct {
	// ID is the full stack ARN; it stays valid for describe calls even
	// while the stack name is being reused.
	ID          string
	Name        string
	Status      string
	Description string
}

// StackResource represents a single resource belonging to a stack.
type StackResource struct {
	LogicalID  string
	PhysicalID string
	Type       string
	Status     string
}

// HasResourceOfType reports whether any of the given resources has the given
// CloudFormation resource type.
func HasResourceOfType(resources []StackResource, resourceType string) bool {
	for _, resource := range resources {
		if resource.Type == resourceType {
			return true
		}
	}
	return false
}

// DefaultCloudFormationOperations provides CloudFormation-specific operations
type DefaultCloudFormationOperations struct {
	client CloudFormationAPI
}

// NewCloudFormationOperations creates an operations wrapper around the given
// client (the real SDK client or a mock).
func NewCloudFormationOperations(client CloudFormationAPI) *DefaultCloudFormationOperations {
	return &DefaultCloudFormationOperations{client: client}
}

// ListStacks returns every stack visible to DescribeStacks, skipping stacks
// in DELETE_COMPLETE. DescribeStacks is used rather than ListStacks because
// only the former carries the full stack description.
func (cf *DefaultCloudFormationOperations) ListStacks(ctx context.Context) ([]*Stack, error) {
	var stacks []*Stack
	paginator := cloudformation.NewDescribeStacksPaginator(cf.client, &cloudformation.DescribeStacksInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe stacks: %w", err)
		}

		for _, cfnStack := range page.Stacks {
			if cfnStack.StackStatus == types.StackStatusDeleteComplete {
				continue
			}

			stacks = append(stacks, &Stack{
				ID:          aws.ToString(cfnStack.StackId),
				Name:        aws.ToString(cfnStack.StackName),
				Status:      string(cfnStack.StackStatus),
				Description: aws.ToString(cfnStack.Description),
			})
		}
	}

	return stacks, nil
}

// ListStackResources returns all resource summaries for a stack, following
// pagination.
func (cf *DefaultCloudFormationOperations) ListStackResources(ctx context.Context, stackName string) ([]StackResource, error) {
	var resources []StackResource
	paginator := cloudformation.NewListStackResourcesPaginator(cf.client, &cloudformation.ListStackResourcesInput{
		StackName: aws.String(stackName),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list resources for stack %s: %w", stackName, err)
		}

		for _, summary := range page.StackResourceSummaries {
			resources = append(resources, StackResource{
				LogicalID:  aws.ToString(summary.LogicalResourceId),
				PhysicalID: aws.ToString(summary.PhysicalResourceId),
				Type:       aws.ToString(summary.ResourceType),
				Status:     string(summary.ResourceStatus),
			})
		}
	}

	return resources, nil
}

// DescribeStackResources returns the resources of a stack. The underlying
// API is not paginated; it fails for stacks with more than 200 resources,
// which callers treat as a per-stack warning.
func (cf *DefaultCloudFormationOperations) DescribeStackResources(ctx context.Context, stackName string) ([]StackResource, error) {
	result, err := cf.client.DescribeStackResources(ctx, &cloudformation.DescribeStackResourcesInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe resources for stack %s: %w", stackName, err)
	}

	resources := make([]StackResource, 0, len(result.StackResources))
	for _, resource := range result.StackResources {
		resources = append(resources, StackResource{
			LogicalID:  aws.ToString(resource.LogicalResourceId),
			PhysicalID: aws.ToString(resource.PhysicalResourceId),
			Type:       aws.ToString(resource.ResourceType),
			Status:     string(resource.ResourceStatus),
		})
	}

	return resources, nil
}

// GetTemplate retrieves the original template body for a stack, as submitted
// at create/update time rather than the processed form.
func (cf *DefaultCloudFormationOperations) GetTemplate(ctx context.Context, stackName string) (string, error) {
	result, err := cf.client.GetTemplate(ctx, &cloudformation.GetTemplateInput{
		StackName:     aws.String(stackName),
		TemplateStage: types.TemplateStageOriginal,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get template for stack %s: %w", stackName, err)
	}

	return aws.ToString(result.TemplateBody), nil
}

/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package aws wraps the AWS SDK clients behind small operations interfaces so
// the reporting packages can be exercised against mocks.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Client provides access to the AWS operations used by the reporting
// commands.
type Client interface {
	CloudFormation() CloudFormationOperations
	ECS() ECSOperations
	Account() AccountOperations
	Region() string
}

// Config holds configuration for creating an AWS client
type Config struct {
	Region  string
	Profile string
}

// DefaultClient provides a high-level interface for AWS operations
type DefaultClient struct {
	config        aws.Config
	cfn           *cloudformation.Client
	ecs           *ecs.Client
	sts           *sts.Client
	organizations *organizations.Client
}

// NewDefaultClient creates a new AWS client with the specified configuration
func NewDefaultClient(ctx context.Context, cfg Config) (*DefaultClient, error) {
	var opts []func(*config.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &DefaultClient{
		config:        awsCfg,
		cfn:           cloudformation.NewFromConfig(awsCfg),
		ecs:           ecs.NewFromConfig(awsCfg),
		sts:           sts.NewFromConfig(awsCfg),
		organizations: organizations.NewFromConfig(awsCfg),
	}, nil
}

// CloudFormation returns CloudFormation operations backed by the real client
func (c *DefaultClient) CloudFormation() CloudFormationOperations {
	return NewCloudFormationOperations(c.cfn)
}

// ECS returns ECS operations backed by the real client
func (c *DefaultClient) ECS() ECSOperations {
	return NewECSOperations(c.ecs)
}

// Account returns account identity operations backed by the real clients
func (c *DefaultClient) Account() AccountOperations {
	return NewAccountOperations(c.sts, c.organizations)
}

// Region returns the configured AWS region
func (c *DefaultClient) Region() string {
	return c.config.Region
}

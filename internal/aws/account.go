/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CallerIdentity identifies the AWS principal the tool is running as.
type CallerIdentity struct {
	AccountID string
	ARN       string
	UserID    string
}

// Account is an AWS account as known to Organizations.
type Account struct {
	ID   string
	Name string
}

// DefaultAccountOperations resolves account identity via STS and account
// display names via Organizations.
type DefaultAccountOperations struct {
	sts           STSAPI
	organizations OrganizationsAPI
}

// NewAccountOperations creates an operations wrapper around the given
// clients (the real SDK clients or mocks).
func NewAccountOperations(stsClient STSAPI, organizationsClient OrganizationsAPI) *DefaultAccountOperations {
	return &DefaultAccountOperations{
		sts:           stsClient,
		organizations: organizationsClient,
	}
}

// GetCallerIdentity returns the identity of the calling principal.
func (a *DefaultAccountOperations) GetCallerIdentity(ctx context.Context) (*CallerIdentity, error) {
	result, err := a.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}

	return &CallerIdentity{
		AccountID: aws.ToString(result.Account),
		ARN:       aws.ToString(result.Arn),
		UserID:    aws.ToString(result.UserId),
	}, nil
}

// DescribeAccount returns the Organizations view of an account, including
// its display name. Fails outside an organization; callers fall back to the
// bare account ID.
func (a *DefaultAccountOperations) DescribeAccount(ctx context.Context, accountID string) (*Account, error) {
	result, err := a.organizations.DescribeAccount(ctx, &organizations.DescribeAccountInput{
		AccountId: aws.String(accountID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe account %s: %w", accountID, err)
	}

	return &Account{
		ID:   aws.ToString(result.Account.Id),
		Name: aws.ToString(result.Account.Name),
	}, nil
}

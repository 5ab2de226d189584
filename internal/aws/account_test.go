/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCallerIdentity_Success(t *testing.T) {
	ctx := context.Background()
	mockSTS := &MockSTSAPI{}
	mockOrgs := &MockOrganizationsAPI{}
	acctOps := NewAccountOperations(mockSTS, mockOrgs)

	output := &sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/ops"),
		UserId:  aws.String("AIDAEXAMPLE"),
	}
	mockSTS.On("GetCallerIdentity", ctx, mock.AnythingOfType("*sts.GetCallerIdentityInput")).
		Return(output, nil)

	identity, err := acctOps.GetCallerIdentity(ctx)

	require.NoError(t, err)
	assert.Equal(t, "123456789012", identity.AccountID)
	assert.Equal(t, "arn:aws:iam::123456789012:user/ops", identity.ARN)
}

func TestDescribeAccount_Success(t *testing.T) {
	ctx := context.Background()
	mockSTS := &MockSTSAPI{}
	mockOrgs := &MockOrganizationsAPI{}
	acctOps := NewAccountOperations(mockSTS, mockOrgs)

	output := &organizations.DescribeAccountOutput{
		Account: &orgtypes.Account{
			Id:   aws.String("123456789012"),
			Name: aws.String("production"),
		},
	}
	mockOrgs.On("DescribeAccount", ctx, mock.MatchedBy(func(input *organizations.DescribeAccountInput) bool {
		return aws.ToString(input.AccountId) == "123456789012"
	})).Return(output, nil)

	account, err := acctOps.DescribeAccount(ctx, "123456789012")

	require.NoError(t, err)
	assert.Equal(t, "production", account.Name)
}

func TestDescribeAccount_Error(t *testing.T) {
	ctx := context.Background()
	mockSTS := &MockSTSAPI{}
	mockOrgs := &MockOrganizationsAPI{}
	acctOps := NewAccountOperations(mockSTS, mockOrgs)

	mockOrgs.On("DescribeAccount", ctx, mock.AnythingOfType("*organizations.DescribeAccountInput")).
		Return(nil, errors.New("AWSOrganizationsNotInUseException"))

	_, err := acctOps.DescribeAccount(ctx, "123456789012")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to describe account 123456789012")
}

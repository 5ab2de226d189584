/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/capacity"
	"github.com/rocky-foreflight/ecs-cost-analysis/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCapacityCommand_Exists(t *testing.T) {
	capacityCmd := findCommand(rootCmd, "capacity")

	assert.NotNil(t, capacityCmd, "capacity command should be registered")
	assert.Equal(t, "capacity <cluster> <instance-type>", capacityCmd.Use)
}

func TestCapacityCommand_RequiresTwoArgs(t *testing.T) {
	capacityCmd := findCommand(rootCmd, "capacity")
	require.NotNil(t, capacityCmd)

	err := capacityCmd.Args(capacityCmd, []string{"production", "m5.xlarge"})
	assert.NoError(t, err, "two arguments should be valid")

	err = capacityCmd.Args(capacityCmd, []string{"production"})
	assert.Error(t, err, "one argument should be invalid")

	err = capacityCmd.Args(capacityCmd, []string{})
	assert.Error(t, err, "no arguments should be invalid")
}

func TestCapacityCommand_PricingFileFlag(t *testing.T) {
	capacityCmd := findCommand(rootCmd, "capacity")
	require.NotNil(t, capacityCmd)

	assert.NotNil(t, capacityCmd.Flags().Lookup("pricing-file"))
}

func TestCapacityCommand_ReportsEstimate(t *testing.T) {
	mockEstimator := &capacity.MockEstimator{}

	oldEstimator := estimator
	SetEstimator(mockEstimator)
	defer SetEstimator(oldEstimator)

	profile, err := pricing.DefaultTable().Lookup("m5.xlarge")
	require.NoError(t, err)

	mockEstimator.On("Estimate", mock.Anything, "production", "m5.xlarge").Return(&capacity.Report{
		Cluster:       "production",
		GeneratedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		AccountID:     "123456789012",
		AccountName:   "prod-account",
		InstanceType:  "m5.xlarge",
		Profile:       profile,
		InstanceCount: 4,
		TotalCPU:      16384,
		TotalMemory:   65536,
		UsedCPU:       8192,
		UsedMemory:    32768,
	}, nil)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"capacity", "production", "m5.xlarge"})

	err = rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "cluster name : production ECS cluster")
	assert.Contains(t, output, "prod-account (123456789012)")
	assert.Contains(t, output, "Excess vCPUs: 8, Excess Memory: 32 GiB")
	assert.Contains(t, output, "Potential Savings:")
	mockEstimator.AssertExpectations(t)
}

func TestCapacityCommand_EstimatorError(t *testing.T) {
	mockEstimator := &capacity.MockEstimator{}

	oldEstimator := estimator
	SetEstimator(mockEstimator)
	defer SetEstimator(oldEstimator)

	mockEstimator.On("Estimate", mock.Anything, "production", "m5.large").Return(nil, errors.New("access denied"))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"capacity", "production", "m5.large"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to estimate capacity")
	assert.Contains(t, err.Error(), "access denied")
	mockEstimator.AssertExpectations(t)
}

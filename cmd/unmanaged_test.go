/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/unmanaged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnmanagedCommand_Exists(t *testing.T) {
	unmanagedCmd := findCommand(rootCmd, "unmanaged")

	assert.NotNil(t, unmanagedCmd, "unmanaged command should be registered")
	assert.Equal(t, "unmanaged <cluster>", unmanagedCmd.Use)
}

func TestUnmanagedCommand_RequiresClusterArg(t *testing.T) {
	unmanagedCmd := findCommand(rootCmd, "unmanaged")
	require.NotNil(t, unmanagedCmd)

	err := unmanagedCmd.Args(unmanagedCmd, []string{"production"})
	assert.NoError(t, err, "one argument should be valid")

	err = unmanagedCmd.Args(unmanagedCmd, []string{})
	assert.Error(t, err, "no arguments should be invalid")

	err = unmanagedCmd.Args(unmanagedCmd, []string{"a", "b"})
	assert.Error(t, err, "two arguments should be invalid")
}

func TestUnmanagedCommand_ReportsResult(t *testing.T) {
	mockDetector := &unmanaged.MockDetector{}

	oldDetector := detector
	SetDetector(mockDetector)
	defer SetDetector(oldDetector)

	mockDetector.On("Detect", mock.Anything, "production").Return(&unmanaged.Result{
		Cluster:          "production",
		TotalServices:    5,
		EC2Services:      []string{"a", "b", "c"},
		StackCount:       4,
		ManagedInCluster: 2,
		Unmanaged:        []string{"arn:aws:ecs:us-east-1:123456789012:service/production/orphan"},
	}, nil)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"unmanaged", "production"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Found 5 total services")
	assert.Contains(t, output, "service/production/orphan")
	mockDetector.AssertExpectations(t)
}

func TestUnmanagedCommand_PrintsWarningsToStderr(t *testing.T) {
	mockDetector := &unmanaged.MockDetector{}

	oldDetector := detector
	SetDetector(mockDetector)
	defer SetDetector(oldDetector)

	mockDetector.On("Detect", mock.Anything, "production").Return(&unmanaged.Result{
		Cluster:  "production",
		Warnings: []string{"could not read resources for stack broken-stack"},
	}, nil)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"unmanaged", "production"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Warning: could not read resources for stack broken-stack")
	assert.NotContains(t, out.String(), "broken-stack")
	mockDetector.AssertExpectations(t)
}

func TestUnmanagedCommand_DetectorError(t *testing.T) {
	mockDetector := &unmanaged.MockDetector{}

	oldDetector := detector
	SetDetector(mockDetector)
	defer SetDetector(oldDetector)

	mockDetector.On("Detect", mock.Anything, "production").Return(nil, errors.New("cluster not found"))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"unmanaged", "production"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to detect unmanaged services")
	assert.Contains(t, err.Error(), "cluster not found")
	mockDetector.AssertExpectations(t)
}

/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package group

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGrouper implements Grouper for testing
type MockGrouper struct {
	mock.Mock
}

func (m *MockGrouper) GroupStacks(ctx context.Context, opts Options) ([]Group, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Group), args.Error(1)
}

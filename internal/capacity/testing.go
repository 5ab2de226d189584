/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package capacity

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEstimator implements Estimator for testing
type MockEstimator struct {
	mock.Mock
}

func (m *MockEstimator) Estimate(ctx context.Context, cluster, instanceType string) (*Report, error) {
	args := m.Called(ctx, cluster, instanceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Report), args.Error(1)
}

/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package unmanaged

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDetector implements Detector for testing
type MockDetector struct {
	mock.Mock
}

func (m *MockDetector) Detect(ctx context.Context, cluster string) (*Result, error) {
	args := m.Called(ctx, cluster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}

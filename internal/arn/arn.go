/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package arn normalizes ECS service Amazon Resource Names.
//
// ECS has historically reported service ARNs in two shapes: a short form
// where the cluster is implied by context (service/<service>) and a long
// form with the cluster embedded (service/<cluster>/<service>). Set-based
// comparison between ECS-reported and CloudFormation-reported identifiers
// only works once both sides are in the long form.
package arn

import (
	"fmt"
	"strings"
)

// NormalizeServiceARN returns the long-form service ARN
// arn:<partition>:ecs:<region>:<account>:service/<cluster>/<service>.
//
// Short-form ARNs gain fallbackCluster as their cluster segment. Long-form
// ARNs are reconstructed canonically, so normalization is idempotent.
// Anything that does not look like an ECS service ARN is returned unchanged
// rather than treated as an error.
func NormalizeServiceARN(serviceARN, fallbackCluster string) string {
	parts := strings.Split(serviceARN, ":")
	if len(parts) < 6 {
		return serviceARN
	}

	resourceParts := strings.Split(parts[5], "/")
	if len(resourceParts) < 2 || resourceParts[0] != "service" {
		return serviceARN
	}

	var clusterName, serviceName string
	switch len(resourceParts) {
	case 2:
		clusterName = fallbackCluster
		serviceName = resourceParts[1]
	case 3:
		clusterName = resourceParts[1]
		serviceName = resourceParts[2]
	default:
		return serviceARN
	}

	return fmt.Sprintf("arn:%s:%s:%s:%s:service/%s/%s",
		parts[1], parts[2], parts[3], parts[4], clusterName, serviceName)
}

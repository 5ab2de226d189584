/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package group implements the template grouping report: CloudFormation
// stacks that contain an ECS service, grouped by (description, template
// hash) so stacks deployed from the same template are listed together.
package group

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rocky-foreflight/ecs-cost-analysis/internal/aws"
)

// Options control which stacks are considered for grouping.
type Options struct {
	// IgnoreSubstring drops stacks whose description contains this string.
	IgnoreSubstring string

	// IgnorePrefixes drops stacks whose description starts with any of
	// these strings.
	IgnorePrefixes []string

	// Contains keeps only stacks whose template body contains this string.
	Contains string
}

// Group is a set of stacks sharing a description and a template hash.
type Group struct {
	Description  string
	TemplateHash string
	StackNames   []string // sorted
}

// Grouper produces template groups
type Grouper interface {
	GroupStacks(ctx context.Context, opts Options) ([]Group, error)
}

// StackGrouper implements Grouper using CloudFormation operations
type StackGrouper struct {
	cfnOps aws.CloudFormationOperations
}

// NewStackGrouper creates a grouper with the provided operations
func NewStackGrouper(cfnOps aws.CloudFormationOperations) *StackGrouper {
	return &StackGrouper{cfnOps: cfnOps}
}

// groupKey identifies one group. The full hash is part of the key so
// distinct templates never collide on a truncated display hash.
type groupKey struct {
	description  string
	templateHash string
}

// GroupStacks fetches all stacks, keeps those containing at least one ECS
// service resource and passing the filters, and groups them by (trimmed
// description, template hash).
func (g *StackGrouper) GroupStacks(ctx context.Context, opts Options) ([]Group, error) {
	stacks, err := g.cfnOps.ListStacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stacks: %w", err)
	}

	members := make(map[groupKey]map[string]struct{})

	for _, stack := range stacks {
		description := strings.TrimSpace(stack.Description)

		// Description filters are checked before the per-stack API
		// calls so ignored stacks cost nothing
		if opts.IgnoreSubstring != "" && strings.Contains(description, opts.IgnoreSubstring) {
			continue
		}
		if hasAnyPrefix(description, opts.IgnorePrefixes) {
			continue
		}

		resources, err := g.cfnOps.ListStackResources(ctx, stack.Name)
		if err != nil {
			return nil, err
		}
		if !aws.HasResourceOfType(resources, aws.ResourceTypeECSService) {
			continue
		}

		template, err := g.cfnOps.GetTemplate(ctx, stack.Name)
		if err != nil {
			return nil, err
		}
		if opts.Contains != "" && !strings.Contains(template, opts.Contains) {
			continue
		}

		key := groupKey{description: description, templateHash: TemplateHash(template)}
		if members[key] == nil {
			members[key] = make(map[string]struct{})
		}
		members[key][stack.Name] = struct{}{}
	}

	return sortedGroups(members), nil
}

// sortedGroups flattens the grouping map into groups sorted by
// (description, hash), each with sorted member names.
func sortedGroups(members map[groupKey]map[string]struct{}) []Group {
	groups := make([]Group, 0, len(members))
	for key, names := range members {
		group := Group{
			Description:  key.description,
			TemplateHash: key.templateHash,
			StackNames:   make([]string, 0, len(names)),
		}
		for name := range names {
			group.StackNames = append(group.StackNames, name)
		}
		sort.Strings(group.StackNames)
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Description != groups[j].Description {
			return groups[i].Description < groups[j].Description
		}
		return groups[i].TemplateHash < groups[j].TemplateHash
	})

	return groups
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

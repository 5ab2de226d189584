/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package pricing provides the static instance-type cost/capacity table used
// by the capacity estimator, plus an optional YAML overlay so operators can
// describe instance families beyond the built-in defaults.
package pricing

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// InstanceTypeProfile describes the hourly on-demand cost and capacity of a
// single EC2 instance type.
type InstanceTypeProfile struct {
	HourlyCost float64 `yaml:"hourly-cost"`
	VCPUs      int     `yaml:"vcpus"`
	MemoryGiB  int     `yaml:"memory-gib"`
}

// CPUUnits returns the instance capacity in ECS CPU units (1 vCPU = 1024).
func (p InstanceTypeProfile) CPUUnits() int64 {
	return int64(p.VCPUs) * 1024
}

// MemoryMiB returns the instance memory in MiB, the unit ECS reports
// container instance memory in.
func (p InstanceTypeProfile) MemoryMiB() int64 {
	return int64(p.MemoryGiB) * 1024
}

// Table maps instance type names to their profiles.
type Table map[string]InstanceTypeProfile

// DefaultTable returns the built-in table. It covers the m5 general-purpose
// family at us-east-1 on-demand rates; other families come from a pricing
// file overlay.
func DefaultTable() Table {
	return Table{
		"m5.large":   {HourlyCost: 0.096, VCPUs: 2, MemoryGiB: 8},
		"m5.xlarge":  {HourlyCost: 0.192, VCPUs: 4, MemoryGiB: 16},
		"m5.2xlarge": {HourlyCost: 0.384, VCPUs: 8, MemoryGiB: 32},
		"m5.4xlarge": {HourlyCost: 0.768, VCPUs: 16, MemoryGiB: 64},
	}
}

// Lookup returns the profile for the given instance type. Unknown types
// produce an error naming the types the table does know about.
func (t Table) Lookup(instanceType string) (InstanceTypeProfile, error) {
	profile, ok := t[instanceType]
	if !ok {
		return InstanceTypeProfile{}, fmt.Errorf("unknown instance type %q, known types: %s",
			instanceType, strings.Join(t.Names(), ", "))
	}
	return profile, nil
}

// Names returns the instance type names in the table, sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new table containing the receiver's entries overlaid with
// the other table's entries. Entries in other win on conflict.
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for name, profile := range t {
		merged[name] = profile
	}
	for name, profile := range other {
		merged[name] = profile
	}
	return merged
}

// pricingFile is the raw YAML structure of a pricing overlay file.
type pricingFile struct {
	InstanceTypes Table `yaml:"instance-types"`
}

// LoadFile reads a pricing overlay from a YAML file.
func LoadFile(filename string) (Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing file %s: %w", filename, err)
	}

	var file pricingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pricing file %s: %w", filename, err)
	}

	for name, profile := range file.InstanceTypes {
		if err := validateProfile(name, profile); err != nil {
			return nil, fmt.Errorf("invalid pricing file %s: %w", filename, err)
		}
	}

	return file.InstanceTypes, nil
}

func validateProfile(name string, profile InstanceTypeProfile) error {
	if profile.HourlyCost <= 0 {
		return fmt.Errorf("instance type %q must have a positive hourly-cost", name)
	}
	if profile.VCPUs <= 0 {
		return fmt.Errorf("instance type %q must have a positive vcpus count", name)
	}
	if profile.MemoryGiB <= 0 {
		return fmt.Errorf("instance type %q must have a positive memory-gib value", name)
	}
	return nil
}

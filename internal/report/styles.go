/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package report holds the terminal styles shared by the reporting commands.
package report

import (
	"os"

	"charm.land/lipgloss/v2"
)

// Styles contains the styles for rendering report output
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Whether colours are enabled
	UseColour bool
}

// NewStyles creates report styles, coloured or plain.
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if !useColour {
		// Plain mode - empty styles pass text through unchanged
		plain := lipgloss.NewStyle()
		s.Heading = plain
		s.Label = plain
		s.Value = plain
		s.Subtle = plain
		s.Success = plain
		s.Warning = plain
		return s
	}

	s.Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")) // Bright Blue

	s.Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")) // Cyan

	s.Value = lipgloss.NewStyle()

	s.Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")) // Grey

	s.Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")) // Green

	s.Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")). // Yellow
		Bold(true)

	return s
}

// ShouldUseColour determines if colour output should be used
func ShouldUseColour() bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	// Check if stdout is a terminal
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

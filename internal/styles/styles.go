// Package styles centralizes the terminal styling used for user-facing
// output lines.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Created returns the styled "Created" word used in scaffolding confirmations.
func Created() string { return green.Render("Created") }

// InfoPrefix returns the styled "INFO:" prefix used when re-emitting
// recognized diagnostic lines from the build tool.
func InfoPrefix() string { return green.Render("INFO:") }

// ErrorPrefix returns the styled "error:" prefix for fatal command errors.
func ErrorPrefix() string { return red.Render("error:") }

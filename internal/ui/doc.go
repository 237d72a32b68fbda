// Package ui holds the [lipgloss] palette used to style CLI output.
//
// Styles degrade to plain text when the output is not a terminal, so rendered strings are safe to pipe.
package ui

// file: envx/cmd/envx/styles.go
package main

import "github.com/charmbracelet/lipgloss"

// Check marks, in the same Carbon palette the library's console logs use.
var (
	markOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3ddbd9")).Render("✓")
	markMiss = lipgloss.NewStyle().Foreground(lipgloss.Color("#da1e28")).Bold(true).Render("✗")
)

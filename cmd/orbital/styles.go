package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	cell        = func(w int) lipgloss.Style { return lipgloss.NewStyle().Width(w).Align(lipgloss.Right) }
	leftCell    = func(w int) lipgloss.Style { return lipgloss.NewStyle().Width(w) }
)

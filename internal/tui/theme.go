package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/helpdesk/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headingStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	badgeStyle    = lipgloss.NewStyle().Bold(true)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
	inputStyle    = lipgloss.NewStyle().Underline(true)
	statCardStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// StatusColor is the badge colour of a status.
func StatusColor(status domain.TicketStatus) lipgloss.Color {
	switch status {
	case domain.TicketStatusOpen:
		return lipgloss.Color("4")
	case domain.TicketStatusInProgress:
		return lipgloss.Color("3")
	case domain.TicketStatusPending:
		return lipgloss.Color("5")
	case domain.TicketStatusResolved:
		return lipgloss.Color("2")
	case domain.TicketStatusClosed:
		return lipgloss.Color("8")
	}
	return lipgloss.Color("7")
}

// PriorityColor is the badge colour of a priority.
func PriorityColor(priority domain.TicketPriority) lipgloss.Color {
	switch priority {
	case domain.TicketPriorityLow:
		return lipgloss.Color("8")
	case domain.TicketPriorityMedium:
		return lipgloss.Color("4")
	case domain.TicketPriorityHigh:
		return lipgloss.Color("208")
	case domain.TicketPriorityUrgent:
		return lipgloss.Color("1")
	}
	return lipgloss.Color("7")
}

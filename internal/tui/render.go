package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/view"
)

// RenderTicketRow formats one ticket as a two line list entry.
func RenderTicketRow(catalog view.Catalog, ticket domain.Ticket) string {
	card := view.NewTicketCard(catalog, ticket)
	status := badgeStyle.Foreground(StatusColor(ticket.Status)).Render(card.StatusLabel)
	priority := badgeStyle.Foreground(PriorityColor(ticket.Priority)).Render(card.PriorityLabel)
	header := fmt.Sprintf("#%d %s %s %s", card.ID, status, priority, headingStyle.Render(card.Title))
	meta := mutedStyle.Render(strings.Join([]string{card.Category, card.Assignee, card.CreatedDate, card.CommentsLabel}, " · "))
	return header + "\n   " + meta
}

// RenderStats formats the four stat cards side by side.
func RenderStats(catalog view.Catalog, stats service.Stats) string {
	cards := []struct {
		label string
		value int
	}{
		{catalog.Text.StatTotal, stats.Total},
		{catalog.Text.StatOpen, stats.Open},
		{catalog.Text.StatInProgress, stats.InProgress},
		{catalog.Text.StatResolved, stats.Resolved},
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, statCardStyle.Render(c.label+"\n"+headingStyle.Render(catalog.Number(c.value))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderDetail formats the detail view of a ticket.
func RenderDetail(catalog view.Catalog, ticket domain.Ticket, now time.Time) string {
	detail := view.NewTicketDetail(catalog, ticket, now)
	card := detail.Card
	text := catalog.Text

	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s %s\n", card.ID,
		badgeStyle.Foreground(StatusColor(ticket.Status)).Render(card.StatusLabel),
		badgeStyle.Foreground(PriorityColor(ticket.Priority)).Render(card.PriorityLabel))
	b.WriteString(titleStyle.Render(card.Title) + "\n\n")
	b.WriteString(headingStyle.Render(text.Description) + "\n")
	b.WriteString(ticket.Description + "\n\n")
	fmt.Fprintf(&b, "%s: %s\n", text.Category, card.Category)
	fmt.Fprintf(&b, "%s: %s\n", text.AssignedTo, card.Assignee)
	fmt.Fprintf(&b, "%s: %s\n", text.Requester, detail.Requester)
	fmt.Fprintf(&b, "%s: %s\n\n", text.CreatedAt, detail.CreatedAt)
	b.WriteString(headingStyle.Render(card.CommentsLabel) + "\n")
	fmt.Fprintf(&b, "[%s] %s %s\n", detail.Comment.Initials, detail.Comment.Author, mutedStyle.Render(detail.Comment.Age))
	b.WriteString(detail.Comment.Body)
	return b.String()
}

// RenderEmpty formats the no-results placeholder.
func RenderEmpty(catalog view.Catalog) string {
	return mutedStyle.Render(catalog.Text.Empty)
}

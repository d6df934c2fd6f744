package view

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/dashboard"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/seed"
	"github.com/spec-kit/helpdesk/internal/service"
)

// Option is one entry of a select input.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// StatCard is one of the four counters above the list.
type StatCard struct {
	Label      string
	Value      string
	Icon       string
	IconClass  string
	ValueClass string
}

// TicketCard is a ticket as shown in the list.
type TicketCard struct {
	ID            int64
	Title         string
	Description   string
	StatusLabel   string
	StatusClass   string
	StatusIcon    string
	PriorityLabel string
	PriorityClass string
	Category      string
	Assignee      string
	CreatedDate   string
	CommentsLabel string
}

// CommentView is the sample comment rendered under a ticket.
type CommentView struct {
	Author   string
	Initials string
	Body     string
	Age      string
}

// TicketDetail is the detail modal, built from the selection snapshot.
type TicketDetail struct {
	Card            TicketCard
	Requester       string
	CreatedAt       string
	DescriptionHTML string
	Comment         CommentView
}

// NewTicketModal holds the create form options.
type NewTicketModal struct {
	PriorityOptions []Option
	CategoryOptions []Option
}

// DashboardPage is everything the dashboard template needs.
type DashboardPage struct {
	Lang            string
	Text            Text
	Stats           []StatCard
	Search          string
	StatusOptions   []Option
	PriorityOptions []Option
	Tickets         []TicketCard
	Empty           bool
	NewTicketOpen   bool
	NewTicket       *NewTicketModal
	DetailOpen      bool
	Detail          *TicketDetail
}

var descriptions = NewDescriptionRenderer()

// BuildDashboardPage assembles the page model. now anchors the relative comment age.
func BuildDashboardPage(catalog Catalog, state dashboard.State, data service.DashboardData, now time.Time) DashboardPage {
	page := DashboardPage{
		Lang:            catalog.Tag.String(),
		Text:            catalog.Text,
		Stats:           statCards(catalog, data.Stats),
		Search:          state.SearchTerm,
		StatusOptions:   statusOptions(catalog, state.StatusFilter),
		PriorityOptions: priorityOptions(catalog, state.PriorityFilter),
		Tickets:         make([]TicketCard, 0, len(data.Tickets)),
		Empty:           len(data.Tickets) == 0,
	}
	for _, ticket := range data.Tickets {
		page.Tickets = append(page.Tickets, NewTicketCard(catalog, ticket))
	}
	if state.NewTicketOpen {
		page.NewTicketOpen = true
		page.NewTicket = newTicketModal(catalog)
	}
	if state.Selected != nil {
		detail := NewTicketDetail(catalog, *state.Selected, now)
		page.DetailOpen = true
		page.Detail = &detail
	}
	return page
}

// NewTicketCard maps a ticket to its list card.
func NewTicketCard(catalog Catalog, ticket domain.Ticket) TicketCard {
	return TicketCard{
		ID:            ticket.ID,
		Title:         ticket.Title,
		Description:   ticket.Description,
		StatusLabel:   catalog.StatusLabel(ticket.Status),
		StatusClass:   StatusBadgeClass(ticket.Status),
		StatusIcon:    StatusIcon(ticket.Status),
		PriorityLabel: catalog.PriorityLabel(ticket.Priority),
		PriorityClass: PriorityBadgeClass(ticket.Priority),
		Category:      ticket.Category,
		Assignee:      ticket.Assignee,
		CreatedDate:   ticket.CreatedAt.Format(catalog.DateLayout),
		CommentsLabel: catalog.Number(ticket.Comments) + " " + catalog.Text.Comments,
	}
}

// NewTicketDetail maps a ticket to the detail modal.
func NewTicketDetail(catalog Catalog, ticket domain.Ticket, now time.Time) TicketDetail {
	comment := seed.SampleComment
	return TicketDetail{
		Card:            NewTicketCard(catalog, ticket),
		Requester:       ticket.Requester,
		CreatedAt:       ticket.CreatedAt.Format(catalog.DateTimeLayout),
		DescriptionHTML: descriptions.Render(ticket.Description),
		Comment: CommentView{
			Author:   comment.Author,
			Initials: comment.Initials,
			Body:     comment.Body,
			Age:      catalog.TimeAgo.FormatReference(now.Add(-comment.Age), now),
		},
	}
}

func statCards(catalog Catalog, stats service.Stats) []StatCard {
	return []StatCard{
		{Label: catalog.Text.StatTotal, Value: catalog.Number(stats.Total), Icon: IconMessage, IconClass: "h-8 w-8 text-gray-400", ValueClass: "text-gray-900 dark:text-white"},
		{Label: catalog.Text.StatOpen, Value: catalog.Number(stats.Open), Icon: IconAlert, IconClass: "h-8 w-8 text-blue-400", ValueClass: "text-blue-600"},
		{Label: catalog.Text.StatInProgress, Value: catalog.Number(stats.InProgress), Icon: IconClock, IconClass: "h-8 w-8 text-yellow-400", ValueClass: "text-yellow-600"},
		{Label: catalog.Text.StatResolved, Value: catalog.Number(stats.Resolved), Icon: IconCheck, IconClass: "h-8 w-8 text-green-400", ValueClass: "text-green-600"},
	}
}

func statusOptions(catalog Catalog, current domain.StatusFilter) []Option {
	current = current.Normalize()
	options := make([]Option, 0, len(domain.Statuses())+1)
	for _, value := range domain.StatusFilterOptions() {
		label := catalog.Text.AllStatuses
		if !value.IsAll() {
			label = catalog.StatusLabel(domain.TicketStatus(value))
		}
		options = append(options, Option{Value: string(value), Label: label, Selected: value == current})
	}
	return options
}

func priorityOptions(catalog Catalog, current domain.PriorityFilter) []Option {
	current = current.Normalize()
	options := make([]Option, 0, len(domain.Priorities())+1)
	for _, value := range domain.PriorityFilterOptions() {
		label := catalog.Text.AllPriorities
		if !value.IsAll() {
			label = catalog.PriorityLabel(domain.TicketPriority(value))
		}
		options = append(options, Option{Value: string(value), Label: label, Selected: value == current})
	}
	return options
}

func newTicketModal(catalog Catalog) *NewTicketModal {
	modal := &NewTicketModal{}
	for i, priority := range domain.Priorities() {
		modal.PriorityOptions = append(modal.PriorityOptions, Option{
			Value:    string(priority),
			Label:    catalog.PriorityLabel(priority),
			Selected: i == 0,
		})
	}
	for i, category := range seed.Categories {
		modal.CategoryOptions = append(modal.CategoryOptions, Option{Value: category, Label: category, Selected: i == 0})
	}
	return modal
}

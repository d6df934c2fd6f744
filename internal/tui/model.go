// Package tui is a terminal rendition of the dashboard driven by the same
// presentation controller as the web UI.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/helpdesk/internal/dashboard"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/seed"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/view"
)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusNewTicket
)

// draftField is the text input of the create form receiving keystrokes.
type draftField int

const (
	draftTitle draftField = iota
	draftDescription
)

// Model implements tea.Model over a dashboard.Controller.
type Model struct {
	ctx        context.Context
	controller *dashboard.Controller
	tickets    *service.TicketService
	catalog    view.Catalog
	keys       KeyMap
	now        func() time.Time

	focus  focus
	cursor int
	data   service.DashboardData
	draft  dashboard.NewTicketDraft
	field  draftField
	err    error
}

// NewModel builds a model and loads the first page of data.
func NewModel(ctx context.Context, controller *dashboard.Controller, tickets *service.TicketService, catalog view.Catalog) Model {
	model := Model{
		ctx:        ctx,
		controller: controller,
		tickets:    tickets,
		catalog:    catalog,
		keys:       DefaultKeyMap,
		now:        time.Now,
	}
	model.refresh()
	return model
}

// Run starts the program in the alternate screen and blocks until it exits.
func Run(ctx context.Context, controller *dashboard.Controller, tickets *service.TicketService, catalog view.Catalog) error {
	program := tea.NewProgram(NewModel(ctx, controller, tickets, catalog), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Keys are routed by the focused region.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch model.focus {
		case focusSearch:
			return model.handleSearchKeys(message)
		case focusNewTicket:
			return model.handleNewTicketKeys(message)
		}
		return model.handleListKeys(message)
	}
	return model, nil
}

func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.data.Tickets)-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.Select):
		if len(model.data.Tickets) > 0 {
			model.controller.SelectTicket(model.ctx, model.data.Tickets[model.cursor])
		}
	case key.Matches(message, model.keys.Back):
		model.controller.CloseDetail(model.ctx)
	case key.Matches(message, model.keys.Search):
		model.focus = focusSearch
	case key.Matches(message, model.keys.CycleStatus):
		model.controller.SetStatusFilter(model.ctx, nextStatusFilter(model.controller.State().StatusFilter))
		model.refresh()
	case key.Matches(message, model.keys.CyclePriority):
		model.controller.SetPriorityFilter(model.ctx, nextPriorityFilter(model.controller.State().PriorityFilter))
		model.refresh()
	case key.Matches(message, model.keys.NewTicket):
		model.controller.OpenNewTicket(model.ctx)
		model.draft = dashboard.NewTicketDraft{}.Normalize()
		model.field = draftTitle
		model.focus = focusNewTicket
	}
	return model, nil
}

// handleSearchKeys edits the search term live. Esc clears the text, or
// leaves search when it is already empty; enter leaves.
func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	term := model.controller.State().SearchTerm
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit
	case message.Type == tea.KeyEsc:
		if term == "" {
			model.focus = focusList
			return model, nil
		}
		term = ""
	case message.Type == tea.KeyEnter:
		model.focus = focusList
		return model, nil
	case message.Type == tea.KeyBackspace:
		if term == "" {
			return model, nil
		}
		runes := []rune(term)
		term = string(runes[:len(runes)-1])
	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		if message.Type == tea.KeySpace {
			term += " "
		} else {
			term += string(message.Runes)
		}
	default:
		return model, nil
	}
	model.controller.SetSearchTerm(model.ctx, term)
	model.refresh()
	return model, nil
}

// handleNewTicketKeys edits the create form. Text goes to the title or the
// description; the arrow keys switch between them.
func (model Model) handleNewTicketKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	text := model.draftText()
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit
	case message.Type == tea.KeyEsc:
		model.controller.CancelNewTicket(model.ctx)
		model.focus = focusList
		return model, nil
	case message.Type == tea.KeyEnter:
		model.controller.SubmitNewTicket(model.ctx, model.draft)
		model.focus = focusList
		return model, nil
	case key.Matches(message, model.keys.DraftPriority):
		model.draft.Priority = nextPriority(model.draft.Priority)
		return model, nil
	case key.Matches(message, model.keys.DraftCategory):
		model.draft.Category = nextCategory(model.draft.Category)
		return model, nil
	case key.Matches(message, model.keys.DraftField):
		if model.field == draftTitle {
			model.field = draftDescription
		} else {
			model.field = draftTitle
		}
		return model, nil
	case message.Type == tea.KeyBackspace:
		if runes := []rune(*text); len(runes) > 0 {
			*text = string(runes[:len(runes)-1])
		}
	case message.Type == tea.KeySpace:
		*text += " "
	case message.Type == tea.KeyRunes:
		*text += string(message.Runes)
	}
	return model, nil
}

func (model *Model) draftText() *string {
	if model.field == draftDescription {
		return &model.draft.Description
	}
	return &model.draft.Title
}

func (model *Model) refresh() {
	data, err := model.tickets.Dashboard(model.ctx, model.controller.State().Filter())
	if err != nil {
		model.err = err
		return
	}
	model.err = nil
	model.data = data
	if model.cursor >= len(data.Tickets) {
		model.cursor = max(len(data.Tickets)-1, 0)
	}
}

// View implements tea.Model.
func (model Model) View() string {
	state := model.controller.State()
	text := model.catalog.Text

	var b strings.Builder
	b.WriteString(titleStyle.Render(text.AppTitle) + "  " + mutedStyle.Render(text.AppSubtitle) + "\n\n")
	b.WriteString(RenderStats(model.catalog, model.data.Stats) + "\n\n")
	b.WriteString(model.filterLine(state) + "\n\n")

	if model.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", model.err))
	}
	if len(model.data.Tickets) == 0 {
		b.WriteString(RenderEmpty(model.catalog) + "\n")
	}
	for i, ticket := range model.data.Tickets {
		marker := "  "
		if i == model.cursor {
			marker = cursorStyle.Render("▸ ")
		}
		b.WriteString(marker + RenderTicketRow(model.catalog, ticket) + "\n")
	}

	if state.Selected != nil {
		b.WriteString("\n" + modalStyle.Render(RenderDetail(model.catalog, *state.Selected, model.now())) + "\n")
	}
	if state.NewTicketOpen {
		b.WriteString("\n" + modalStyle.Render(model.newTicketForm()) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render(model.helpLine()))
	return b.String()
}

func (model Model) filterLine(state dashboard.State) string {
	search := state.SearchTerm
	if search == "" && model.focus != focusSearch {
		search = model.catalog.Text.SearchPlaceholder
	}
	if model.focus == focusSearch {
		search = inputStyle.Render(search + "_")
	}
	status := model.catalog.Text.AllStatuses
	if f := state.StatusFilter; !f.IsAll() {
		status = model.catalog.StatusLabel(domain.TicketStatus(f))
	}
	priority := model.catalog.Text.AllPriorities
	if f := state.PriorityFilter; !f.IsAll() {
		priority = model.catalog.PriorityLabel(domain.TicketPriority(f))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, "/ "+search, "   s: "+status, "   p: "+priority)
}

func (model Model) newTicketForm() string {
	text := model.catalog.Text
	title := model.draft.Title
	if title == "" {
		title = mutedStyle.Render(text.FieldTitlePlaceholder)
	}
	description := model.draft.Description
	if description == "" {
		description = mutedStyle.Render(text.FieldDescriptionPlaceholder)
	}
	titleMarker, descriptionMarker := "  ", "  "
	if model.field == draftDescription {
		descriptionMarker = cursorStyle.Render("▸ ")
	} else {
		titleMarker = cursorStyle.Render("▸ ")
	}
	return strings.Join([]string{
		titleStyle.Render(text.NewTicketTitle),
		titleMarker + text.FieldTitle + ": " + inputStyle.Render(title),
		descriptionMarker + text.FieldDescription + ": " + inputStyle.Render(description),
		"  " + text.FieldPriority + ": " + model.catalog.PriorityLabel(model.draft.Priority) + mutedStyle.Render("  (tab)"),
		"  " + text.FieldCategory + ": " + model.draft.Category + mutedStyle.Render("  (shift+tab)"),
		mutedStyle.Render("↑/↓: " + text.FieldTitle + "/" + text.FieldDescription + "  enter: " + text.Create + "  esc: " + text.Cancel),
	}, "\n")
}

func (model Model) helpLine() string {
	bindings := model.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " · ")
}

func nextStatusFilter(current domain.StatusFilter) domain.StatusFilter {
	options := domain.StatusFilterOptions()
	current = current.Normalize()
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func nextPriorityFilter(current domain.PriorityFilter) domain.PriorityFilter {
	options := domain.PriorityFilterOptions()
	current = current.Normalize()
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func nextPriority(current domain.TicketPriority) domain.TicketPriority {
	priorities := domain.Priorities()
	for i, priority := range priorities {
		if priority == current {
			return priorities[(i+1)%len(priorities)]
		}
	}
	return priorities[0]
}

func nextCategory(current string) string {
	for i, category := range seed.Categories {
		if category == current {
			return seed.Categories[(i+1)%len(seed.Categories)]
		}
	}
	return seed.Categories[0]
}

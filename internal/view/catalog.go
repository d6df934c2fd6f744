// Package view turns dashboard state into page models and renders them.
package view

import (
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Text holds the interface strings of one locale.
type Text struct {
	AppTitle                    string
	AppSubtitle                 string
	NewTicket                   string
	StatTotal                   string
	StatOpen                    string
	StatInProgress              string
	StatResolved                string
	SearchPlaceholder           string
	AllStatuses                 string
	AllPriorities               string
	Empty                       string
	Comments                    string
	NewTicketTitle              string
	FieldTitle                  string
	FieldTitlePlaceholder       string
	FieldDescription            string
	FieldDescriptionPlaceholder string
	FieldPriority               string
	FieldCategory               string
	Cancel                      string
	Create                      string
	Description                 string
	Category                    string
	AssignedTo                  string
	Requester                   string
	CreatedAt                   string
	AddCommentPlaceholder       string
	AddComment                  string
	CloseTicket                 string
	Edit                        string
	MarkResolved                string
	Close                       string
	Filter                      string
}

// Catalog bundles everything locale dependent.
type Catalog struct {
	Tag            language.Tag
	Text           Text
	DateLayout     string
	DateTimeLayout string
	TimeAgo        timeago.Config

	statusLabels   map[domain.TicketStatus]string
	priorityLabels map[domain.TicketPriority]string
}

var brazilianPortuguese = Catalog{
	Tag: language.BrazilianPortuguese,
	Text: Text{
		AppTitle:                    "HelpDesk Professional",
		AppSubtitle:                 "Sistema de gerenciamento de tickets",
		NewTicket:                   "Novo Ticket",
		StatTotal:                   "Total",
		StatOpen:                    "Abertos",
		StatInProgress:              "Em Progresso",
		StatResolved:                "Resolvidos",
		SearchPlaceholder:           "Buscar tickets...",
		AllStatuses:                 "Todos os Status",
		AllPriorities:               "Todas as Prioridades",
		Empty:                       "Nenhum ticket encontrado",
		Comments:                    "comentários",
		NewTicketTitle:              "Novo Ticket",
		FieldTitle:                  "Título",
		FieldTitlePlaceholder:       "Descreva o problema brevemente",
		FieldDescription:            "Descrição",
		FieldDescriptionPlaceholder: "Forneça mais detalhes sobre o problema",
		FieldPriority:               "Prioridade",
		FieldCategory:               "Categoria",
		Cancel:                      "Cancelar",
		Create:                      "Criar Ticket",
		Description:                 "Descrição",
		Category:                    "Categoria",
		AssignedTo:                  "Atribuído a",
		Requester:                   "Solicitante",
		CreatedAt:                   "Criado em",
		AddCommentPlaceholder:       "Adicionar comentário...",
		AddComment:                  "Adicionar Comentário",
		CloseTicket:                 "Fechar Ticket",
		Edit:                        "Editar",
		MarkResolved:                "Marcar como Resolvido",
		Close:                       "Fechar",
		Filter:                      "Filtrar",
	},
	DateLayout:     "02/01/2006",
	DateTimeLayout: "02/01/2006 15:04:05",
	TimeAgo:        timeago.Portuguese,
	statusLabels: map[domain.TicketStatus]string{
		domain.TicketStatusOpen:       "Aberto",
		domain.TicketStatusInProgress: "Em Progresso",
		domain.TicketStatusPending:    "Pendente",
		domain.TicketStatusResolved:   "Resolvido",
		domain.TicketStatusClosed:     "Fechado",
	},
	priorityLabels: map[domain.TicketPriority]string{
		domain.TicketPriorityLow:    "Baixa",
		domain.TicketPriorityMedium: "Média",
		domain.TicketPriorityHigh:   "Alta",
		domain.TicketPriorityUrgent: "Urgente",
	},
}

var english = Catalog{
	Tag: language.English,
	Text: Text{
		AppTitle:                    "HelpDesk Professional",
		AppSubtitle:                 "Ticket management system",
		NewTicket:                   "New Ticket",
		StatTotal:                   "Total",
		StatOpen:                    "Open",
		StatInProgress:              "In Progress",
		StatResolved:                "Resolved",
		SearchPlaceholder:           "Search tickets...",
		AllStatuses:                 "All Statuses",
		AllPriorities:               "All Priorities",
		Empty:                       "No tickets found",
		Comments:                    "comments",
		NewTicketTitle:              "New Ticket",
		FieldTitle:                  "Title",
		FieldTitlePlaceholder:       "Briefly describe the problem",
		FieldDescription:            "Description",
		FieldDescriptionPlaceholder: "Give more details about the problem",
		FieldPriority:               "Priority",
		FieldCategory:               "Category",
		Cancel:                      "Cancel",
		Create:                      "Create Ticket",
		Description:                 "Description",
		Category:                    "Category",
		AssignedTo:                  "Assigned to",
		Requester:                   "Requester",
		CreatedAt:                   "Created at",
		AddCommentPlaceholder:       "Add a comment...",
		AddComment:                  "Add Comment",
		CloseTicket:                 "Close Ticket",
		Edit:                        "Edit",
		MarkResolved:                "Mark as Resolved",
		Close:                       "Close",
		Filter:                      "Filter",
	},
	DateLayout:     "01/02/2006",
	DateTimeLayout: "01/02/2006 3:04:05 PM",
	TimeAgo:        timeago.English,
	statusLabels: map[domain.TicketStatus]string{
		domain.TicketStatusOpen:       "Open",
		domain.TicketStatusInProgress: "In Progress",
		domain.TicketStatusPending:    "Pending",
		domain.TicketStatusResolved:   "Resolved",
		domain.TicketStatusClosed:     "Closed",
	},
	priorityLabels: map[domain.TicketPriority]string{
		domain.TicketPriorityLow:    "Low",
		domain.TicketPriorityMedium: "Medium",
		domain.TicketPriorityHigh:   "High",
		domain.TicketPriorityUrgent: "Urgent",
	},
}

var (
	catalogs = []Catalog{brazilianPortuguese, english}
	matcher  = language.NewMatcher([]language.Tag{brazilianPortuguese.Tag, english.Tag})
)

// Catalogs lists every supported catalog, default first.
func Catalogs() []Catalog {
	return append([]Catalog(nil), catalogs...)
}

// CatalogFor picks the closest supported catalog, falling back to pt-BR.
func CatalogFor(tags ...language.Tag) Catalog {
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return catalogs[0]
	}
	return catalogs[idx]
}

// StatusLabel names a status; unknown values are echoed back.
func (c Catalog) StatusLabel(status domain.TicketStatus) string {
	if label, ok := c.statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// PriorityLabel names a priority; unknown values are echoed back.
func (c Catalog) PriorityLabel(priority domain.TicketPriority) string {
	if label, ok := c.priorityLabels[priority]; ok {
		return label
	}
	return string(priority)
}

// Number formats n for the catalog's locale.
func (c Catalog) Number(n int) string {
	return message.NewPrinter(c.Tag).Sprintf("%d", n)
}

// StatusBadgeClass returns the Tailwind classes of a status badge.
func StatusBadgeClass(status domain.TicketStatus) string {
	switch status {
	case domain.TicketStatusOpen:
		return "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-200"
	case domain.TicketStatusInProgress:
		return "bg-yellow-100 text-yellow-800 dark:bg-yellow-900 dark:text-yellow-200"
	case domain.TicketStatusPending:
		return "bg-purple-100 text-purple-800 dark:bg-purple-900 dark:text-purple-200"
	case domain.TicketStatusResolved:
		return "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-200"
	case domain.TicketStatusClosed:
		return "bg-gray-100 text-gray-800 dark:bg-gray-800 dark:text-gray-200"
	}
	return ""
}

// PriorityBadgeClass returns the Tailwind classes of a priority badge.
func PriorityBadgeClass(priority domain.TicketPriority) string {
	switch priority {
	case domain.TicketPriorityLow:
		return "bg-gray-100 text-gray-800 dark:bg-gray-800 dark:text-gray-200"
	case domain.TicketPriorityMedium:
		return "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-200"
	case domain.TicketPriorityHigh:
		return "bg-orange-100 text-orange-800 dark:bg-orange-900 dark:text-orange-200"
	case domain.TicketPriorityUrgent:
		return "bg-red-100 text-red-800 dark:bg-red-900 dark:text-red-200"
	}
	return ""
}

// Icon names used by the templates.
const (
	IconAlert   = "alert-circle"
	IconClock   = "clock"
	IconCheck   = "check-circle"
	IconMessage = "message-square"
)

// StatusIcon returns the icon shown next to a status badge.
func StatusIcon(status domain.TicketStatus) string {
	switch status {
	case domain.TicketStatusOpen:
		return IconAlert
	case domain.TicketStatusInProgress, domain.TicketStatusPending:
		return IconClock
	case domain.TicketStatusResolved, domain.TicketStatusClosed:
		return IconCheck
	}
	return ""
}

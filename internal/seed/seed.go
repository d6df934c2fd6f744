// Package seed provides the ticket list the dashboard starts with.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// timestampLayouts are tried in order when parsing seed timestamps.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Categories offered by the new ticket form.
var Categories = []string{"Técnico", "Software", "Hardware", "Acesso", "Email"}

// Comment is the fixed sample comment displayed in the ticket detail view.
type Comment struct {
	Author   string
	Initials string
	Body     string
	Age      time.Duration
}

// SampleComment is shown under every ticket; comments are not stored.
var SampleComment = Comment{
	Author:   "Maria Santos",
	Initials: "MS",
	Body:     "Este problema está afetando toda a equipe de vendas. É urgente!",
	Age:      2 * time.Hour,
}

// Default returns a fresh copy of the built-in five ticket seed.
func Default() []domain.Ticket {
	return []domain.Ticket{
		{
			ID:          1001,
			Title:       "Sistema de login não está funcionando",
			Description: "Usuários não conseguem fazer login no sistema",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityUrgent,
			Assignee:    "João Silva",
			Requester:   "Maria Santos",
			Category:    "Técnico",
			CreatedAt:   mustParse("2024-03-15T10:30:00"),
			UpdatedAt:   mustParse("2024-03-15T10:30:00"),
			Comments:    3,
		},
		{
			ID:          1002,
			Title:       "Solicitação de novo software",
			Description: "Necessário instalar Adobe Creative Suite",
			Status:      domain.TicketStatusInProgress,
			Priority:    domain.TicketPriorityMedium,
			Assignee:    "Pedro Costa",
			Requester:   "Ana Oliveira",
			Category:    "Software",
			CreatedAt:   mustParse("2024-03-14T14:20:00"),
			UpdatedAt:   mustParse("2024-03-15T09:15:00"),
			Comments:    5,
		},
		{
			ID:          1003,
			Title:       "Impressora não imprime",
			Description: "Impressora do 3º andar não está respondendo",
			Status:      domain.TicketStatusPending,
			Priority:    domain.TicketPriorityHigh,
			Assignee:    "Carlos Mendes",
			Requester:   "Roberto Lima",
			Category:    "Hardware",
			CreatedAt:   mustParse("2024-03-13T11:45:00"),
			UpdatedAt:   mustParse("2024-03-14T16:30:00"),
			Comments:    2,
		},
		{
			ID:          1004,
			Title:       "Solicitação de acesso ao servidor",
			Description: "Novo funcionário precisa de acesso",
			Status:      domain.TicketStatusResolved,
			Priority:    domain.TicketPriorityLow,
			Assignee:    "João Silva",
			Requester:   "Departamento RH",
			Category:    "Acesso",
			CreatedAt:   mustParse("2024-03-12T09:00:00"),
			UpdatedAt:   mustParse("2024-03-13T10:20:00"),
			Comments:    1,
		},
		{
			ID:          1005,
			Title:       "Email não sincroniza no celular",
			Description: "Cliente de email não está sincronizando",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityMedium,
			Assignee:    "Pedro Costa",
			Requester:   "Lucas Ferreira",
			Category:    "Email",
			CreatedAt:   mustParse("2024-03-15T08:15:00"),
			UpdatedAt:   mustParse("2024-03-15T08:15:00"),
			Comments:    0,
		},
	}
}

type seedFile struct {
	Tickets []ticketRecord `yaml:"tickets"`
}

type ticketRecord struct {
	ID          int64  `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
	Assignee    string `yaml:"assignee"`
	Requester   string `yaml:"requester"`
	Category    string `yaml:"category"`
	CreatedAt   string `yaml:"createdAt"`
	UpdatedAt   string `yaml:"updatedAt"`
	Comments    int    `yaml:"comments"`
}

// Load returns the built-in seed when path is empty, otherwise the file's tickets.
func Load(path string) ([]domain.Ticket, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML seed document of the form `tickets: [...]`.
func LoadFile(path string) ([]domain.Ticket, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	tickets, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return tickets, nil
}

// Parse decodes a YAML seed document.
func Parse(content []byte) ([]domain.Ticket, error) {
	var doc seedFile
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	tickets := make([]domain.Ticket, 0, len(doc.Tickets))
	for i, rec := range doc.Tickets {
		ticket, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("ticket #%d: %w", i, err)
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func (r ticketRecord) toDomain() (domain.Ticket, error) {
	status, err := domain.ParseStatus(r.Status)
	if err != nil {
		return domain.Ticket{}, err
	}
	priority, err := domain.ParsePriority(r.Priority)
	if err != nil {
		return domain.Ticket{}, err
	}
	createdAt, err := ParseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("createdAt: %w", err)
	}
	updatedAt, err := ParseTimestamp(r.UpdatedAt)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("updatedAt: %w", err)
	}
	return domain.Ticket{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
		Priority:    priority,
		Assignee:    r.Assignee,
		Requester:   r.Requester,
		Category:    r.Category,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Comments:    r.Comments,
	}, nil
}

// ParseTimestamp accepts zone-less local ISO-8601 timestamps and RFC 3339.
func ParseTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func mustParse(raw string) time.Time {
	t, err := ParseTimestamp(raw)
	if err != nil {
		panic(err)
	}
	return t
}

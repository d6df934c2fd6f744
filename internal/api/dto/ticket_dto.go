package dto

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// TicketListQuery captures the list filters from the query string.
type TicketListQuery struct {
	Search   string `query:"q"`
	Status   string `query:"status"`
	Priority string `query:"priority"`
}

// NewTicketForm is the create modal's form body.
type NewTicketForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Priority    string `form:"priority"`
	Category    string `form:"category"`
}

// TicketResponse is a ticket as returned by the JSON API.
type TicketResponse struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
	Assignee    string                `json:"assignee"`
	Requester   string                `json:"requester"`
	Category    string                `json:"category"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	Comments    int                   `json:"comments"`
}

// StatsResponse carries the four card counters.
type StatsResponse struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}

// StatsDetailResponse adds the per status breakdown.
type StatsDetailResponse struct {
	StatsResponse
	ByStatus map[domain.TicketStatus]int `json:"by_status"`
}

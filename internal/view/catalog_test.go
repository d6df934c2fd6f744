package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestLookupsCoverEveryVariant(t *testing.T) {
	for _, catalog := range Catalogs() {
		for _, status := range domain.Statuses() {
			assert.NotEqual(t, string(status), catalog.StatusLabel(status), "%s label for %s", catalog.Tag, status)
			assert.NotEmpty(t, StatusBadgeClass(status), status)
			assert.NotEmpty(t, StatusIcon(status), status)
		}
		for _, priority := range domain.Priorities() {
			assert.NotEqual(t, string(priority), catalog.PriorityLabel(priority), "%s label for %s", catalog.Tag, priority)
			assert.NotEmpty(t, PriorityBadgeClass(priority), priority)
		}
	}
}

func TestBrazilianLabels(t *testing.T) {
	catalog := CatalogFor(language.BrazilianPortuguese)
	assert.Equal(t, "Em Progresso", catalog.StatusLabel(domain.TicketStatusInProgress))
	assert.Equal(t, "Urgente", catalog.PriorityLabel(domain.TicketPriorityUrgent))
	assert.Equal(t, "Nenhum ticket encontrado", catalog.Text.Empty)
}

func TestUnknownValuesEchoBack(t *testing.T) {
	catalog := CatalogFor(language.English)
	assert.Equal(t, "archived", catalog.StatusLabel(domain.TicketStatus("archived")))
	assert.Equal(t, "", StatusBadgeClass(domain.TicketStatus("archived")))
	assert.Equal(t, "", StatusIcon(domain.TicketStatus("archived")))
}

func TestCatalogFor(t *testing.T) {
	assert.Equal(t, language.English, CatalogFor(language.AmericanEnglish).Tag)
	assert.Equal(t, language.BrazilianPortuguese, CatalogFor(language.Portuguese).Tag)
	assert.Equal(t, language.BrazilianPortuguese, CatalogFor(language.Japanese).Tag)
	assert.Equal(t, language.BrazilianPortuguese, CatalogFor().Tag)
}

func TestStatusIcons(t *testing.T) {
	assert.Equal(t, IconAlert, StatusIcon(domain.TicketStatusOpen))
	assert.Equal(t, IconClock, StatusIcon(domain.TicketStatusPending))
	assert.Equal(t, IconCheck, StatusIcon(domain.TicketStatusClosed))
}

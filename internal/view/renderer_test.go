package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/spec-kit/helpdesk/internal/dashboard"
	"github.com/spec-kit/helpdesk/internal/seed"
)

const templateDir = "../../templates"

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(templateDir)
	require.NoError(t, err)
	return r
}

func TestNewRendererRejectsMissingDir(t *testing.T) {
	_, err := NewRenderer("")
	assert.Error(t, err)
	_, err = NewRenderer("does-not-exist")
	assert.Error(t, err)
}

func TestRendererValidate(t *testing.T) {
	parsed, err := newTestRenderer(t).Validate()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, parsed, 3)
}

func TestRenderDashboardList(t *testing.T) {
	r := newTestRenderer(t)
	state := dashboard.NewController("s", nil).State()
	page := BuildDashboardPage(CatalogFor(language.BrazilianPortuguese), state, seedData(state.Filter()), time.Now())

	out, err := r.RenderDashboard(page)
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `lang="pt-BR"`)
	assert.Contains(t, html, "Sistema de login não está funcionando")
	assert.Contains(t, html, `action="/tickets/1005/select"`)
	assert.Contains(t, html, "Em Progresso")
	assert.NotContains(t, html, "Nenhum ticket encontrado")
	assert.NotContains(t, html, `id="new-ticket-modal"`)
	assert.NotContains(t, html, `id="ticket-detail-modal"`)
}

func TestRenderDashboardEmptyAndModals(t *testing.T) {
	r := newTestRenderer(t)
	controller := dashboard.NewController("s", nil)
	controller.SetSearchTerm(t.Context(), "nothing matches this")
	controller.OpenNewTicket(t.Context())
	controller.SelectTicket(t.Context(), seed.Default()[0])
	state := controller.State()
	page := BuildDashboardPage(CatalogFor(language.BrazilianPortuguese), state, seedData(state.Filter()), time.Now())

	out, err := r.RenderDashboard(page)
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, "Nenhum ticket encontrado")
	assert.Contains(t, html, `id="new-ticket-modal"`)
	assert.Contains(t, html, `action="/tickets/new/submit"`)
	assert.Contains(t, html, `id="ticket-detail-modal"`)
	assert.Contains(t, html, "<p>Usuários não conseguem fazer login no sistema</p>")
	assert.Contains(t, html, "Maria Santos")
}

func TestRenderDashboardPlaceholderFollowsEmptyFlag(t *testing.T) {
	r := newTestRenderer(t)
	page := DashboardPage{Lang: "pt-BR", Text: CatalogFor(language.BrazilianPortuguese).Text}

	out, err := r.RenderDashboard(page)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `id="empty"`)

	page.Empty = true
	out, err = r.RenderDashboard(page)
	require.NoError(t, err)
	assert.Contains(t, string(out), `id="empty"`)
	assert.Contains(t, string(out), "Nenhum ticket encontrado")
}

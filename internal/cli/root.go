// Package cli implements the helpdeskctl commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/spec-kit/helpdesk/internal/repository"
	"github.com/spec-kit/helpdesk/internal/seed"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/view"
)

var version = "dev"

type options struct {
	seedFile string
	locale   string
}

// NewRootCommand builds the helpdeskctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "helpdeskctl",
		Short:         "Browse the help desk tickets from the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "YAML seed file (defaults to the built-in tickets)")
	root.PersistentFlags().StringVar(&opts.locale, "locale", "pt-BR", "Interface locale (pt-BR or en)")

	root.AddCommand(newTicketsCommand(opts))
	root.AddCommand(newStatsCommand(opts))
	root.AddCommand(newTUICommand(opts))
	return root
}

func (o *options) catalog() (view.Catalog, error) {
	tag, err := language.Parse(o.locale)
	if err != nil {
		return view.Catalog{}, fmt.Errorf("invalid locale %q: %w", o.locale, err)
	}
	return view.CatalogFor(tag), nil
}

func (o *options) ticketService() (*service.TicketService, error) {
	tickets, err := seed.Load(o.seedFile)
	if err != nil {
		return nil, err
	}
	repo, err := repository.NewMemoryTicketRepository(tickets)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return service.NewTicketService(repo), nil
}

func (o *options) load() (*service.TicketService, view.Catalog, error) {
	catalog, err := o.catalog()
	if err != nil {
		return nil, view.Catalog{}, err
	}
	tickets, err := o.ticketService()
	if err != nil {
		return nil, view.Catalog{}, err
	}
	return tickets, catalog, nil
}

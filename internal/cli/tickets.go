package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/tui"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

func newTicketsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"t"},
		Short:   "List and inspect tickets",
	}
	cmd.AddCommand(newTicketsListCommand(opts))
	cmd.AddCommand(newTicketsShowCommand(opts))
	return cmd
}

func newTicketsListCommand(opts *options) *cobra.Command {
	var search, status, priority string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tickets, catalog, err := opts.load()
			if err != nil {
				return err
			}
			statusFilter, err := domain.ParseStatusFilter(status)
			if err != nil {
				return err
			}
			priorityFilter, err := domain.ParsePriorityFilter(priority)
			if err != nil {
				return err
			}
			filter := service.DefaultTicketFilter()
			filter.SearchTerm = search
			filter.Status = statusFilter
			filter.Priority = priorityFilter
			data, err := tickets.Dashboard(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(data.Tickets) == 0 {
				fmt.Fprintln(out, tui.RenderEmpty(catalog))
				return nil
			}
			for _, ticket := range data.Tickets {
				fmt.Fprintln(out, tui.RenderTicketRow(catalog, ticket))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive text or ticket number")
	cmd.Flags().StringVar(&status, "status", domain.FilterAll, "Status filter")
	cmd.Flags().StringVar(&priority, "priority", domain.FilterAll, "Priority filter")
	return cmd
}

func newTicketsShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one ticket in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return apperrors.NewValidationError("ticket id must be numeric", map[string]any{"id": args[0]})
			}
			tickets, catalog, err := opts.load()
			if err != nil {
				return err
			}
			ticket, err := tickets.Ticket(cmd.Context(), id)
			if apperrors.IsNotFound(err) {
				return fmt.Errorf("ticket #%d does not exist", id)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDetail(catalog, *ticket, time.Now()))
			return nil
		},
	}
}

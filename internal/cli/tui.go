package cli

import (
	"github.com/spf13/cobra"

	"github.com/spec-kit/helpdesk/internal/dashboard"
	"github.com/spec-kit/helpdesk/internal/tui"
)

func newTUICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tickets, catalog, err := opts.load()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), dashboard.NewController("tui", nil), tickets, catalog)
		},
	}
}

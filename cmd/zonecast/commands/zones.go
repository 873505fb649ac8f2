package commands

import (
	"github.com/spf13/cobra"
)

func zonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List the zone catalog with each zone's current time",
		RunE: func(cmd *cobra.Command, args []string) error {
			times := converter.CurrentTimes(cmd.Context(), source.Now(), converter.Catalog())

			return printTimes(cmd.OutOrStdout(), times)
		},
	}

	return cmd
}

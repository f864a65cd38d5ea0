package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "List series names in the configured database",
	Long: `List every series in the configured database, one per line, in the
order the store returns them.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.conn.Connect(); err != nil {
			return err
		}
		defer app.conn.Close()

		names, err := app.conn.ListSeries()
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

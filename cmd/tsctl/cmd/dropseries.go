package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dropseriesCmd = &cobra.Command{
	Use:   "dropseries SERIES",
	Short: "Delete a series and all of its points",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series := args[0]

		if err := app.conn.Connect(); err != nil {
			return err
		}
		defer app.conn.Close()

		if err := app.conn.DropSeries(series); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Dropped series %q\n", series)
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tsctl/internal/render"
)

var queryCmd = &cobra.Command{
	Use:   "query QUERY",
	Short: "Run a query and print its result tables",
	Long: `Run a single query statement and print every result table as
fixed-width text. Numeric columns are right-aligned.

Examples:
  tsctl query 'SELECT * FROM cpu LIMIT 10'
  tsctl query 'SELECT mean(usage) FROM cpu WHERE time > now() - 1h GROUP BY time(5m)'`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		if err := app.conn.Connect(); err != nil {
			return err
		}
		defer app.conn.Close()

		tables, err := app.conn.Query(query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, table := range tables {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if table.Name != "" {
				fmt.Fprintln(out, table.Name)
			}
			if err := render.Render(out, render.Table{
				Columns: table.Columns,
				Rows:    table.Values,
			}); err != nil {
				return err
			}
		}
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tsctl/internal/backfill"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill SERIES START END INTERVAL TEMPLATE",
	Short: "Write synthetic points into a series",
	Long: `Generate synthetic points from START (inclusive) up to END (exclusive),
spaced INTERVAL milliseconds apart, and write them in chunks of 10000.

Each point is a copy of the JSON object TEMPLATE with its timestamp set to
the generation instant and a random "count" field in [0, 100].

START and END accept RFC3339 timestamps, "2006-01-02T15:04:05",
"2006-01-02 15:04:05", a bare date, or unix milliseconds.

Examples:
  tsctl backfill cpu 2024-01-01 2024-01-02 60000 '{"host":"server1","usage":0.5}'
  tsctl backfill requests 2024-01-01T00:00:00 2024-01-01T06:00:00 1000 '{"status":"ok"}'`,
	Args: exactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := parseBackfillArgs(args)
		if err != nil {
			return err
		}

		if err := app.conn.Connect(); err != nil {
			return err
		}
		defer app.conn.Close()

		total, err := backfill.Run(app.conn, backfill.Options{
			Series:   parsed.series,
			Start:    parsed.start,
			End:      parsed.end,
			Interval: parsed.interval,
			Template: parsed.template,
		}, app.log)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Backfilled %d points into %q\n", total, parsed.series)
		return nil
	},
}

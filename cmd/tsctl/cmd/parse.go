package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// backfillArgs is the validated form of the five backfill positionals.
type backfillArgs struct {
	series   string
	start    time.Time
	end      time.Time
	interval time.Duration
	template map[string]interface{}
}

// timestampLayouts are tried in order when parsing START and END.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parses an absolute timestamp in one of the supported
// layouts, or as unix milliseconds.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", s)
}

// parseBackfillArgs validates SERIES START END INTERVAL TEMPLATE. Arity is
// enforced by the command's Args validator before this runs.
func parseBackfillArgs(args []string) (*backfillArgs, error) {
	series := args[0]

	start, err := parseTimestamp(args[1])
	if err != nil {
		return nil, wrapArgError("invalid START", err)
	}
	end, err := parseTimestamp(args[2])
	if err != nil {
		return nil, wrapArgError("invalid END", err)
	}
	if start.After(end) {
		return nil, argErrorf("START %q is after END %q", args[1], args[2])
	}

	ms, err := strconv.Atoi(args[3])
	if err != nil {
		return nil, wrapArgError("invalid INTERVAL", err)
	}
	if ms <= 0 {
		return nil, argErrorf("INTERVAL must be a positive number of milliseconds, got %d", ms)
	}

	var template map[string]interface{}
	if err := json.Unmarshal([]byte(args[4]), &template); err != nil {
		return nil, wrapArgError("invalid TEMPLATE", err)
	}

	return &backfillArgs{
		series:   series,
		start:    start,
		end:      end,
		interval: time.Duration(ms) * time.Millisecond,
		template: template,
	}, nil
}

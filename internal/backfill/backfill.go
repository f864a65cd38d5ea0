// Package backfill generates synthetic points and writes them to a series
// in fixed-size chunks.
package backfill

import (
	"log/slog"
	"math/rand"
	"time"

	"tsctl/internal/store"
)

// ChunkSize is the maximum number of points written per request.
const ChunkSize = 10000

// Writer is the single store operation backfill depends on.
type Writer interface {
	WritePoints(series string, points []store.Point) error
}

// Options describes one backfill run. End is exclusive; Interval must be
// positive (the argument parser enforces this).
type Options struct {
	Series   string
	Start    time.Time
	End      time.Time
	Interval time.Duration
	Template map[string]interface{}
}

// Run generates points at Interval spacing from Start (inclusive) up to End
// (exclusive) and writes them in chunks of at most ChunkSize, one write call
// per chunk. Each point is a deep copy of the template with a random "count"
// field in [0, 100]; its timestamp is the generation cursor. The first write
// error aborts the run. Returns the number of points written.
func Run(w Writer, opts Options, log *slog.Logger) (int, error) {
	total := 0
	cursor := opts.Start

	for cursor.Before(opts.End) {
		chunk := make([]store.Point, 0, ChunkSize)
		for len(chunk) < ChunkSize && cursor.Before(opts.End) {
			fields := deepCopy(opts.Template)
			// The point timestamp replaces any "time" key the template
			// may carry.
			delete(fields, "time")
			fields["count"] = rand.Intn(101)

			chunk = append(chunk, store.Point{Fields: fields, Time: cursor})
			cursor = cursor.Add(opts.Interval)
		}

		if err := w.WritePoints(opts.Series, chunk); err != nil {
			return total, err
		}
		total += len(chunk)
		log.Info("wrote points", "series", opts.Series, "count", len(chunk), "total", total)
	}

	return total, nil
}

// deepCopy clones a decoded JSON object so points never share nested maps
// or slices with the template.
func deepCopy(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src)+1)
	for k, v := range src {
		dst[k] = copyValue(v)
	}
	return dst
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return deepCopy(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return t
	}
}

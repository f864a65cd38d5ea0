package store

import (
	"fmt"
	"time"

	"github.com/influxdata/influxdb1-client/models"
	client "github.com/influxdata/influxdb1-client/v2"
)

// Point is one timestamped record bound for a series.
type Point struct {
	Fields map[string]interface{}
	Time   time.Time
}

// runQuery executes a single statement against the configured database and
// returns all results, folding response-level errors into the error return.
func (c *Conn) runQuery(command string) ([]client.Result, error) {
	resp, err := c.Client().Query(client.NewQuery(command, c.cfg.Database, ""))
	if err != nil {
		return nil, err
	}
	if err := resp.Error(); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// ListSeries returns every series key in the database, in store order.
func (c *Conn) ListSeries() ([]string, error) {
	results, err := c.runQuery("SHOW SERIES")
	if err != nil {
		return nil, fmt.Errorf("listing series: %w", err)
	}

	var names []string
	for _, result := range results {
		for _, row := range result.Series {
			for _, values := range row.Values {
				if len(values) == 0 {
					continue
				}
				if name, ok := values[0].(string); ok {
					names = append(names, name)
				}
			}
		}
	}
	return names, nil
}

// DropSeries deletes the named series and all its points.
func (c *Conn) DropSeries(series string) error {
	if _, err := c.runQuery(fmt.Sprintf("DROP SERIES FROM %q", series)); err != nil {
		return fmt.Errorf("drop series %q: %w", series, err)
	}
	return nil
}

// Query runs an arbitrary statement and returns its result tables.
func (c *Conn) Query(command string) ([]models.Row, error) {
	results, err := c.runQuery(command)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", command, err)
	}

	var tables []models.Row
	for _, result := range results {
		tables = append(tables, result.Series...)
	}
	return tables, nil
}

// WritePoints writes one batch of points to the given series in a single
// request.
func (c *Conn) WritePoints(series string, points []Point) error {
	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  c.cfg.Database,
		Precision: "ms",
	})
	if err != nil {
		return fmt.Errorf("write %d points to %q: %w", len(points), series, err)
	}

	for _, p := range points {
		pt, err := client.NewPoint(series, nil, p.Fields, p.Time)
		if err != nil {
			return fmt.Errorf("write %d points to %q: %w", len(points), series, err)
		}
		bp.AddPoint(pt)
	}

	if err := c.Client().Write(bp); err != nil {
		return fmt.Errorf("write %d points to %q: %w", len(points), series, err)
	}
	return nil
}

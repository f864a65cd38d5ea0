// Package store wraps the time-series database client behind a single-use
// connection facade and exposes the four request types tsctl needs.
package store

import (
	"fmt"
	"log/slog"
	"time"

	client "github.com/influxdata/influxdb1-client/v2"

	"tsctl/internal/config"
)

// requestTimeout bounds every HTTP round trip to the store.
const requestTimeout = 30 * time.Second

// State describes where a Conn is in its connect lifecycle.
type State int

const (
	StateUnconnected State = iota
	StateConnecting
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Conn is a single-use connection to the time-series store. Connect may be
// called exactly once; after it returns successfully the underlying client
// is available through Client. Exactly one transition to ready or failed
// ever happens.
type Conn struct {
	cfg *config.Config
	log *slog.Logger

	state       State
	client      client.Client
	connectedAt time.Time
}

// New creates an unconnected Conn for the configured store.
func New(cfg *config.Config, log *slog.Logger) *Conn {
	return &Conn{cfg: cfg, log: log, state: StateUnconnected}
}

// State returns the current lifecycle state.
func (c *Conn) State() State {
	return c.state
}

// Connect dials the store and probes it with a lightweight metadata query.
// On failure the Conn is unusable and the caller must not proceed.
// Calling Connect a second time is a programming error and panics.
func (c *Conn) Connect() error {
	if c.state != StateUnconnected {
		panic(fmt.Sprintf("store: Connect called twice on the same Conn (state %s)", c.state))
	}
	c.state = StateConnecting
	started := time.Now()

	cl, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     c.cfg.Addr(),
		Username: c.cfg.User,
		Password: c.cfg.Password,
		Timeout:  requestTimeout,
	})
	if err != nil {
		c.state = StateFailed
		return fmt.Errorf("connect to %s: %w", c.cfg.Addr(), err)
	}

	// Connectivity probe. A metadata query exercises auth and database
	// selection, which a bare ping does not.
	resp, err := cl.Query(client.NewQuery("SHOW SERIES LIMIT 1", c.cfg.Database, ""))
	if err == nil {
		err = resp.Error()
	}
	if err != nil {
		c.state = StateFailed
		cl.Close()
		return fmt.Errorf("connect to %s: %w", c.cfg.Addr(), err)
	}

	c.client = cl
	c.connectedAt = time.Now()
	c.state = StateReady
	c.log.Info("connected",
		"addr", c.cfg.Addr(),
		"database", c.cfg.Database,
		"took", time.Since(started).String(),
	)
	return nil
}

// Client returns the connected client handle. Commands only run after
// Connect has succeeded, so reaching the panic means a caller bug.
func (c *Conn) Client() client.Client {
	if c.state != StateReady {
		panic(fmt.Sprintf("store: Client called in state %s", c.state))
	}
	return c.client
}

// ConnectedAt reports when the handshake completed. Zero until ready.
func (c *Conn) ConnectedAt() time.Time {
	return c.connectedAt
}

// Close releases the underlying client, if one was ever established.
func (c *Conn) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

package store

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// connected returns a ready Conn whose post-probe requests are served by
// handler.
func connected(t *testing.T, handler http.HandlerFunc) *Conn {
	t.Helper()
	probed := false
	conn := newTestConn(t, func(w http.ResponseWriter, r *http.Request) {
		if !probed {
			probed = true
			respondJSON(t, w, emptyResults)
			return
		}
		handler(w, r)
	})
	if err := conn.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return conn
}

func TestListSeries_PreservesStoreOrder(t *testing.T) {
	conn := connected(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "SHOW SERIES" {
			t.Errorf("unexpected query: %q", got)
		}
		respondJSON(t, w, `{"results":[{"series":[{"columns":["key"],"values":[["zebra"],["cpu,host=a"],["mem"]]}]}]}`)
	})

	names, err := conn.ListSeries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"zebra", "cpu,host=a", "mem"}
	if len(names) != len(want) {
		t.Fatalf("expected %d series, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("series[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestListSeries_WrapsError(t *testing.T) {
	conn := connected(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, `{"results":[],"error":"store exploded"}`)
	})

	_, err := conn.ListSeries()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "listing series") {
		t.Errorf("expected listing context in error, got: %v", err)
	}
}

func TestDropSeries(t *testing.T) {
	conn := connected(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != `DROP SERIES FROM "cpu"` {
			t.Errorf("unexpected query: %q", got)
		}
		respondJSON(t, w, emptyResults)
	})

	if err := conn.DropSeries("cpu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDropSeries_WrapsError(t *testing.T) {
	conn := connected(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, `{"results":[],"error":"nope"}`)
	})

	err := conn.DropSeries("cpu")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `drop series "cpu"`) {
		t.Errorf("expected drop context in error, got: %v", err)
	}
}

func TestQuery_ReturnsTables(t *testing.T) {
	conn := connected(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, `{"results":[{"series":[{"name":"cpu","columns":["time","value"],"values":[[1,0.5],[2,0.7]]}]}]}`)
	})

	tables, err := conn.Query("SELECT * FROM cpu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if tables[0].Name != "cpu" {
		t.Errorf("expected table name cpu, got %s", tables[0].Name)
	}
	if len(tables[0].Columns) != 2 || len(tables[0].Values) != 2 {
		t.Errorf("unexpected table shape: %d columns, %d rows", len(tables[0].Columns), len(tables[0].Values))
	}
}

func TestQuery_WrapsError(t *testing.T) {
	conn := connected(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, `{"results":[],"error":"syntax error"}`)
	})

	_, err := conn.Query("SELEKT")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `query "SELEKT"`) {
		t.Errorf("expected query context in error, got: %v", err)
	}
}

func TestWritePoints(t *testing.T) {
	var body string
	conn := connected(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/write") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("db"); got != "testdb" {
			t.Errorf("unexpected database: %q", got)
		}
		if got := r.URL.Query().Get("precision"); got != "ms" {
			t.Errorf("unexpected precision: %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusNoContent)
	})

	points := []Point{
		{Fields: map[string]interface{}{"count": 1}, Time: time.UnixMilli(1000)},
		{Fields: map[string]interface{}{"count": 2}, Time: time.UnixMilli(2000)},
	}
	if err := conn.WritePoints("cpu", points); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 line-protocol lines, got %d: %q", len(lines), body)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "cpu ") {
			t.Errorf("expected line for series cpu, got: %q", line)
		}
	}
}

func TestWritePoints_WrapsError(t *testing.T) {
	conn := connected(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"field type conflict"}`))
	})

	points := []Point{{Fields: map[string]interface{}{"count": 1}, Time: time.UnixMilli(1000)}}
	err := conn.WritePoints("cpu", points)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `write 1 points to "cpu"`) {
		t.Errorf("expected write context in error, got: %v", err)
	}
}

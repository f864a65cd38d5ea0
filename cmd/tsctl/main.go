// Package main is the entry point for the tsctl CLI, a single-shot client
// for an InfluxDB-compatible time-series store.
package main

import (
	"os"

	"tsctl/cmd/tsctl/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

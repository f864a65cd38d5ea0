package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ArgumentError reports invalid command-line input. It is always produced
// before any network activity and maps to exit status 2 with usage output.
type ArgumentError struct {
	msg string
	err error
}

func (e *ArgumentError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *ArgumentError) Unwrap() error { return e.err }

func argErrorf(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}

func wrapArgError(msg string, err error) *ArgumentError {
	return &ArgumentError{msg: msg, err: err}
}

// exactArgs is cobra.ExactArgs with a typed error so Execute can map wrong
// arity to the usage exit status.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return argErrorf("%q expects %d argument(s), got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// Package assert provides runtime invariant checks that panic on failure.
//
// The checks are compiled in by default. Building with the
// assertions_disabled tag turns every check into a no-op:
//
//	go build -tags assertions_disabled ./...
package assert

import "fmt"

// message renders the optional panic arguments. If the first arg is a
// string it is used as a format string with the remaining args.
func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}

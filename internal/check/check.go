// Package check provides the precondition assertions used across partseq.
//
// Every exported operation in this module documents its preconditions.
// A violated precondition is a caller bug, not a runtime condition, so it
// is fatal: the check panics immediately instead of returning an error.
package check

import "fmt"

// Precondition panics with a formatted message when cond is false.
func Precondition(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("partseq: precondition violated: "+format, args...))
	}
}

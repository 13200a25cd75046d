package ast

import "fmt"

// InvariantError reports an internal shape invariant violated while
// building the document tree: the grammar engine matched a pattern but the
// children it consumed didn't have the shape that pattern's builder case
// expects. Build itself never raises this — every grammar.Pattern has a
// builder case written against the same shape its matcher guarantees — but
// the type exists so a caller wrapping Build in recover (the pipeline
// package does, at the orchestration boundary) has something concrete to
// report rather than an opaque panic value.
type InvariantError struct {
	Pattern string
	Detail  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ast: invariant violated building %s: %s", e.Pattern, e.Detail)
}

package runner

import (
	"context"
	"fmt"
	"io"
)

// DryRunner prints commands instead of running them. Every command
// succeeds with empty output and every executable is found.
type DryRunner struct {
	Out io.Writer
}

// Run implements Runner
func (r *DryRunner) Run(_ context.Context, c Command) (*Result, error) {
	fmt.Fprintf(r.Out, "  $ %s\n", c)
	return &Result{}, nil
}

// LookPath implements Runner
func (r *DryRunner) LookPath(name string) (string, error) {
	return name, nil
}

package cmd

import (
	"context"
	"fmt"
)

// Path prints the file the target flags currently resolve to.
type Path struct{}

// Run executes the path command.
func (Path) Run(ctx context.Context) error {
	out, _ := stdoutFrom(ctx)

	_, err := fmt.Fprintln(out, targetFrom(ctx).Path())

	return err
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/recipegen/log"
)

// Check generates every input manifest without writing anything and
// reports how many recipes each one yields.
type Check struct {
	Quiet bool `help:"Report failures only" short:"q"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if len(inputsFrom(ctx)) == 0 {
		return ErrNoInput
	}

	out := stdoutFrom(ctx)

	var passed, failed, total int

	for res := range results(ctx) {
		if res.err != nil {
			failed++

			fmt.Fprintf(out, "%s %s: %v\n", failStyle.Render("FAIL"), res.path, res.err)
			log.DebugContext(ctx, "check failed", slog.Any("error", res.err))

			continue
		}

		passed++
		total += len(res.recipes)

		if !c.Quiet {
			fmt.Fprintf(out, "%s %s: %d recipes from %d grammars -> %s\n",
				passStyle.Render("ok"), res.path,
				len(res.recipes), len(res.manifest.Grammars), res.manifest.Output,
			)
		}
	}

	fmt.Fprintln(out, noteStyle.Render(fmt.Sprintf(
		"%d passed, %d failed, %d recipes", passed, failed, total,
	)))

	if failed > 0 {
		return ErrCheckFailed.With(slog.Int("failed", failed))
	}

	return nil
}

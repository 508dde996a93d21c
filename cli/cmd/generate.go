package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ardnew/recipegen/log"
	"github.com/ardnew/recipegen/manifest"
	"github.com/ardnew/recipegen/output"
)

// Generate expands every input manifest and writes its recipes to the file
// the manifest names under the distribution directory.
type Generate struct {
	Dist   string `default:"dist" help:"Directory receiving generated files"            short:"d"              type:"path"`
	DryRun bool   `               help:"Print recipes to stdout without writing files"                                      name:"dry-run"`
	Format string `default:"json" help:"Output format"                                   enum:"json,yaml"`
	Indent int    `default:"2"    help:"Indent width of output (0 for compact JSON)"`
	Watch  bool   `               help:"Regenerate whenever an input changes"           short:"w"`
}

// Run executes the generate command.
func (g *Generate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	format, err := manifest.ParseFormat(g.Format)
	if err != nil {
		return err
	}

	inputs := inputsFrom(ctx)
	if len(inputs) == 0 {
		return ErrNoInput
	}

	if err = g.once(ctx, format); err != nil && !g.Watch {
		return err
	}

	if !g.Watch {
		return nil
	}

	if err != nil {
		log.ErrorContext(ctx, "generate failed", slog.Any("error", err))
	}

	return watch(ctx, inputs, defaultDebounce, func(ctx context.Context) {
		if err := g.once(ctx, format); err != nil {
			log.ErrorContext(ctx, "generate failed", slog.Any("error", err))
		}
	})
}

// once generates every input manifest a single time, stopping at the first
// manifest that fails.
func (g *Generate) once(ctx context.Context, format manifest.Format) error {
	out, start := stdoutFrom(ctx), time.Now()

	var files, total int

	for res := range results(ctx) {
		if res.err != nil {
			return res.err
		}

		files++
		total += len(res.recipes)

		if g.DryRun {
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(
				"# %s -> %s (%d recipes)", res.path, res.manifest.Output, len(res.recipes),
			)))

			if err := output.Write(out, res.recipes, format, g.Indent); err != nil {
				return err
			}

			continue
		}

		path, err := output.WriteFile(g.Dist, res.manifest.Output, res.recipes, format, g.Indent)
		if err != nil {
			return err
		}

		log.InfoContext(ctx, "wrote recipes",
			slog.String("manifest", res.path),
			slog.String("output", path),
			slog.Int("recipes", len(res.recipes)),
			slog.Duration("elapsed", res.elapsed),
		)
	}

	if g.DryRun {
		fmt.Fprintln(out, noteStyle.Render("Dry run complete. No files were written."))
	}

	log.InfoContext(ctx, "finished all tasks",
		slog.Int("manifests", files),
		slog.Int("recipes", total),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

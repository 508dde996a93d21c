package log_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/recipegen/log"
	"github.com/ardnew/recipegen/pkg"
)

// Examples disable timestamps and colors so their output is stable.

func Example_text() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithTimeLayout(""),
		log.WithPretty(false))

	logger.Info("wrote recipes", slog.String("path", "dist/tools/pickaxe.json"), slog.Int("count", 4))

	// Output:
	// level=INFO msg="wrote recipes" path=dist/tools/pickaxe.json count=4
}

func Example_json() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"), log.WithPretty(false))

	logger.Warn("skipped grammar", slog.Int("grammar", 2))

	// Output:
	// {"level":"WARN","msg":"skipped grammar","grammar":2}
}

func Example_trace() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout(""),
		log.WithPretty(false))

	logger.Trace("patch", slog.String("m", "copper"))
	logger.Debug("expand", slog.String("template", "pickaxe"))

	// Output:
	// level=TRACE msg=patch m=copper
	// level=DEBUG msg=expand template=pickaxe
}

func Example_with() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithLevel(log.LevelWarn),
		log.WithTimeLayout(""),
		log.WithPretty(false)).
		With(slog.String("manifest", "pickaxe.json"))

	logger.Info("below the minimum level")
	logger.With(slog.Int("grammar", 0)).Error("no template")

	// Output:
	// level=ERROR msg="no template" manifest=pickaxe.json grammar=0
}

func Example_error() {
	logger := log.Make(os.Stdout, log.WithTimeLayout(""), log.WithPretty(false))

	errUnknown := pkg.NewError("unknown template")
	logger.Error("run failed", slog.Any("error", errUnknown.With(slog.String("template", "axe"))))

	// Output:
	// {"level":"ERROR","msg":"run failed","error":{"error":"unknown template","template":"axe"}}
}

func ExampleConfig() {
	defer log.Config(
		log.WithOutput(os.Stderr),
		log.WithLevel(log.DefaultLevel),
		log.WithFormat(log.DefaultFormat),
		log.WithTimeLayout(log.DefaultTimeLayout),
		log.WithPretty(log.DefaultPretty),
	)

	log.Config(
		log.WithOutput(os.Stdout),
		log.WithFormat(log.FormatText),
		log.WithTimeLayout(""),
		log.WithPretty(false))

	log.Info("from package")
	slog.Info("from slog")

	// Output:
	// level=INFO msg="from package"
	// level=INFO msg="from slog"
}

func ExampleLevels() {
	for name := range log.Levels() {
		fmt.Println(name)
	}

	fmt.Println(log.ParseLevel("TRACE") == log.LevelTrace)
	fmt.Println(log.LevelTrace + 2)

	// Output:
	// trace
	// debug
	// info
	// warn
	// error
	// true
	// trace+2
}

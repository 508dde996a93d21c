package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func decodeRecord(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(b), &rec); err != nil {
		t.Fatalf("invalid JSON record %q: %v", b, err)
	}

	return rec
}

func TestMake_Defaults(t *testing.T) {
	logger := Make(&bytes.Buffer{})

	if logger.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", logger.Level(), DefaultLevel)
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", logger.Format(), DefaultFormat)
	}

	if logger.caller != DefaultCaller || logger.pretty != DefaultPretty {
		t.Errorf("caller=%v pretty=%v", logger.caller, logger.pretty)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelWarn), WithPretty(false))

	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")

	if buf.Len() != 0 {
		t.Fatalf("records below warn were written: %s", buf.String())
	}

	logger.Warn("warn")
	logger.Error("error")

	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("expected 2 records, got %d: %s", n, buf.String())
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false), WithFormat(FormatJSON))
	logger.Trace("hello", slog.String("key", "value"), slog.Int("n", 3))

	rec := decodeRecord(t, buf.Bytes())

	if rec["msg"] != "hello" || rec["key"] != "value" || rec["n"] != float64(3) {
		t.Errorf("unexpected record: %v", rec)
	}

	if rec["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", rec["level"])
	}
}

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false), WithFormat(FormatText))
	logger.Info("hello", slog.String("key", "value"))

	out := buf.String()
	for _, want := range []string{"level=INFO", "msg=hello", "key=value"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogger_TimeLayout(t *testing.T) {
	tests := []struct {
		layout string
		check  func(string) bool
	}{
		{"none", func(s string) bool { return s == "" }},
		{"", func(s string) bool { return s == "" }},
		{"RFC3339", func(s string) bool { _, err := time.Parse(time.RFC3339, s); return err == nil }},
		{"rfc-3339-nano", func(s string) bool { return strings.Contains(s, ".") }},
		{"2006", func(s string) bool { return len(s) == 4 }},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			var buf bytes.Buffer

			Make(&buf, WithTimeLayout(tt.layout), WithPretty(false)).Info("x")

			ts, _ := decodeRecord(t, buf.Bytes())["time"].(string)
			if !tt.check(ts) {
				t.Errorf("unexpected time %q", ts)
			}
		})
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true), WithPretty(false)).Info("where")

	src, ok := decodeRecord(t, buf.Bytes())["source"].(map[string]any)
	if !ok {
		t.Fatalf("missing source in %s", buf.String())
	}

	if file, _ := src["file"].(string); !strings.HasSuffix(file, "log_test.go") {
		t.Errorf("source file = %q, want log_test.go", file)
	}

	buf.Reset()
	Make(&buf, WithCaller(false), WithPretty(false)).Info("where")

	if _, ok := decodeRecord(t, buf.Bytes())["source"]; ok {
		t.Error("source logged with caller disabled")
	}
}

func TestLogger_With(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		var buf bytes.Buffer

		logger := Make(&buf, WithPretty(pretty), WithFormat(FormatText)).
			With(slog.String("component", "generator"))
		logger.Info("run")

		if !strings.Contains(buf.String(), "component") || !strings.Contains(buf.String(), "generator") {
			t.Errorf("pretty=%v: attribute missing from %q", pretty, buf.String())
		}
	}
}

func TestLogger_Wrap(t *testing.T) {
	base := Make(&bytes.Buffer{}, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug), WithFormat(FormatText))

	if base.Level() != LevelError {
		t.Errorf("Wrap modified the original logger")
	}

	if wrapped.Level() != LevelDebug || wrapped.Format() != FormatText {
		t.Errorf("wrapped level=%v format=%v", wrapped.Level(), wrapped.Format())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var logger Logger

	logger.Error("discarded")
	logger.With(slog.Int("a", 1)).Info("discarded")

	if logger.Enabled(context.Background(), LevelError) {
		t.Error("zero Logger reports enabled")
	}

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Error("zero Logger does not report defaults")
	}

	if logger.Wrap(WithLevel(LevelDebug)).Level() != LevelDebug {
		t.Error("Wrap of zero Logger ignored options")
	}
}

type logged struct{ msg string }

func (l logged) LogValue() slog.Value {
	return slog.GroupValue(slog.String("error", l.msg), slog.Int("code", 7))
}

func TestPretty_Output(t *testing.T) {
	tests := []struct {
		format Format
		want   []string
	}{
		{FormatText, []string{"msg" + ansiReset + "=", "hello", "TRACE", "code" + ansiReset + "=", "boom"}},
		{FormatJSON, []string{"{\n", "  " + ansiGray + "msg", "hello", "TRACE", "boom", "\n}"}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer

			logger := Make(&buf, WithFormat(tt.format), WithLevel(LevelTrace), WithTimeLayout("none"))
			logger.Trace("hello", slog.Any("err", logged{"boom"}), slog.Bool("ok", true))

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}

			if strings.Contains(out, "time") {
				t.Errorf("time written with layout none: %q", out)
			}
		})
	}
}

func TestPretty_Group(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText))
	slogger := slog.New(logger.Handler().WithGroup("run")).With(slog.String("id", "7"))
	slogger.Info("x", slog.Int("n", 1))

	out := buf.String()
	for _, want := range []string{"run.id", "run.n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var (
		buf bytes.Buffer
		mu  sync.Mutex
		wg  sync.WaitGroup
	)

	logger := Make(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}), WithPretty(false))

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			logger.Info("concurrent", slog.Int("i", i))
		}()
	}

	wg.Wait()

	if n := strings.Count(buf.String(), "\n"); n != 16 {
		t.Errorf("expected 16 records, got %d", n)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func TestWithOutput_Nil(t *testing.T) {
	logger := Make(nil, WithOutput(nil))
	logger.Error("discarded", slog.Any("error", errors.New("x")))
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := Make(&bytes.Buffer{}, WithPretty(false))

	for b.Loop() {
		logger.Info("benchmark", slog.Int("n", 1))
	}
}

func BenchmarkLogger_InfoPretty(b *testing.B) {
	logger := Make(&bytes.Buffer{})

	for b.Loop() {
		logger.Info("benchmark", slog.Int("n", 1))
	}
}

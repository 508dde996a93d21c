package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		setup   func(t *testing.T, path string)
		wantErr error
	}{
		{
			name: "create_new_config",
		},
		{
			name:  "overwrite_existing_with_force",
			force: true,
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("existing content"), 0o600))
			},
		},
		{
			name: "fail_without_force",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("existing content"), 0o600))
			},
			wantErr: ErrFileExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.setup != nil {
				tt.setup(t, confPath)
			}

			var cli struct {
				Dist  string   `default:"dist"`
				Input []string `sep:","`
			}

			parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
			require.NoError(t, err)

			ktx, err := parser.Parse([]string{"--input=a,b"})
			require.NoError(t, err)

			err = (&Init{Force: tt.force}).Run(WithContext(context.Background(), ktx))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}

			require.NoError(t, err)

			content, err := os.ReadFile(confPath)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, yaml.Unmarshal(content, &got))
			assert.Equal(t, "dist", got["dist"])
			assert.Equal(t, []any{"a", "b"}, got["input"])
		})
	}
}

func TestConfigValue(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   any
		wantOK bool
	}{
		{"nil", nil, nil, false},
		{"empty_string", "", "", false},
		{"string", "x", "x", true},
		{"empty_list", []string{}, []string{}, false},
		{"list", []string{"a"}, []string{"a"}, true},
		{"bool", false, false, true},
		{"int", 3, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := configValue(tt.in)
			assert.Equal(t, tt.wantOK, ok)

			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

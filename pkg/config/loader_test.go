package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/config"
)

// 🧪 writeConfig writes config content to a temp file and returns its path
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func boolPtr(b bool) *bool {
	return &b
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		want        *config.Config
		wantErr     bool
		errContains string
	}{
		{
			name: "yaml",
			file: "config.yaml",
			content: `recursive: false
color: false
excludes:
  - "*.tmp"
  - "vendor/**"
`,
			want: &config.Config{
				Recursive: boolPtr(false),
				Color:     boolPtr(false),
				Excludes:  []string{"*.tmp", "vendor/**"},
			},
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"recursive": true, "excludes": ["*.bak"]}`,
			want: &config.Config{
				Recursive: boolPtr(true),
				Excludes:  []string{"*.bak"},
			},
		},
		{
			name: "hcl",
			file: "config.hcl",
			content: `recursive = false
excludes  = ["*.log"]
`,
			want: &config.Config{
				Recursive: boolPtr(false),
				Excludes:  []string{"*.log"},
			},
		},
		{
			name:    "renamerc_yaml",
			file:    ".renamerc",
			content: "excludes: [\"*.tmp\"]\n",
			want: &config.Config{
				Excludes: []string{"*.tmp"},
			},
		},
		{
			name:    "renamerc_hcl",
			file:    ".renamerc",
			content: `excludes = ["*.tmp"]`,
			want: &config.Config{
				Excludes: []string{"*.tmp"},
			},
		},
		{
			name:        "unknown_yaml_field",
			file:        "config.yaml",
			content:     "recursvie: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        "config.json",
			content:     `{"recursvie": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "unsupported_extension",
			file:        "config.toml",
			content:     `recursive = true`,
			wantErr:     true,
			errContains: "unsupported config file extension",
		},
		{
			name:        "invalid_exclude_pattern",
			file:        "config.yaml",
			content:     "excludes: [\"[unterminated\"]\n",
			wantErr:     true,
			errContains: "invalid exclude pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)

			cfg, err := config.Load(context.Background(), path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			assert.Equal(t, tt.want.Recursive, cfg.Recursive)
			assert.Equal(t, tt.want.Color, cfg.Color)
			assert.Equal(t, tt.want.Excludes, cfg.Excludes)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(context.Background(), filepath.Join(t.TempDir(), ".renamerc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, cfg.Recursive)
	assert.Nil(t, cfg.Color)
	assert.Empty(t, cfg.Excludes)
	assert.Empty(t, cfg.Location())
}

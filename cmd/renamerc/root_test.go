package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/config"
)

// 🧪 parseFlags builds a fresh root command and parses args without running it
func parseFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func boolPtr(b bool) *bool {
	return &b
}

func TestBuildOptions(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		cfg           *config.Config
		wantRecursive bool
		wantExcludes  []string
	}{
		{
			name:          "defaults",
			args:          []string{"-f", "_old", "-r", ""},
			cfg:           config.Default(),
			wantRecursive: true,
		},
		{
			name:          "no_recursive_flag",
			args:          []string{"-f", "_old", "-r", "", "--no-recursive"},
			cfg:           config.Default(),
			wantRecursive: false,
		},
		{
			name:          "config_disables_recursion",
			args:          []string{"-f", "_old", "-r", ""},
			cfg:           &config.Config{Recursive: boolPtr(false)},
			wantRecursive: false,
		},
		{
			name:          "flag_overrides_config",
			args:          []string{"-f", "_old", "-r", "", "--no-recursive"},
			cfg:           &config.Config{Recursive: boolPtr(true)},
			wantRecursive: false,
		},
		{
			name:          "excludes_from_config",
			args:          []string{"-f", "_old", "-r", ""},
			cfg:           &config.Config{Excludes: []string{"*.tmp"}},
			wantRecursive: true,
			wantExcludes:  []string{"*.tmp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := parseFlags(t, tt.args...)

			opts := buildOptions(cmd, tt.cfg)
			assert.Equal(t, "_old", opts.Find)
			assert.Equal(t, tt.wantRecursive, opts.Recursive)
			assert.Equal(t, tt.wantExcludes, opts.Excludes)
		})
	}
}

func TestColorEnabled(t *testing.T) {
	parseFlags(t, "-f", "x", "-r", "y")
	assert.True(t, colorEnabled(config.Default()))
	assert.False(t, colorEnabled(&config.Config{Color: boolPtr(false)}))

	parseFlags(t, "-f", "x", "-r", "y", "--no-color")
	assert.False(t, colorEnabled(&config.Config{Color: boolPtr(true)}),
		"--no-color should win over config")
}

func TestLoadConfig_MissingDefaultIsFine(t *testing.T) {
	tmpDir := t.TempDir()
	cmd := parseFlags(t, "-f", "x", "-r", "y")
	configFile = filepath.Join(tmpDir, config.DefaultFileName)

	cfg, err := loadConfig(context.Background(), cmd)
	require.NoError(t, err)
	assert.Empty(t, cfg.Excludes)
}

func TestLoadConfig_MissingExplicitIsAnError(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "custom.yaml")
	cmd := parseFlags(t, "-f", "x", "-r", "y", "--config", missing)

	_, err := loadConfig(context.Background(), cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("excludes: [\"*.bak\"]\n"), 0o644))

	cmd := parseFlags(t, "-f", "x", "-r", "y", "--config", path)

	cfg, err := loadConfig(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.bak"}, cfg.Excludes)
}

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bisko/internal/config"
)

func TestResolveProjectDir_FlagOverride(t *testing.T) {
	t.Setenv("BISKO_PROJECT_DIR", "")
	flagDir := t.TempDir()

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")

	assert.Equal(t, filepath.Join(flagDir, ".bisko"), got)
	assert.True(t, filepath.IsAbs(got), "returned path must be absolute")
}

func TestResolveProjectDir_FlagOverridesEnv(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv("BISKO_PROJECT_DIR", envDir)

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")

	assert.Equal(t, filepath.Join(flagDir, ".bisko"), got)
}

func TestResolveProjectDir_EnvVarOverride(t *testing.T) {
	envDir := filepath.Join(t.TempDir(), ".bisko")
	t.Setenv("BISKO_PROJECT_DIR", envDir)

	got := config.ResolveProjectDir(context.Background(), "", "/does/not/matter")

	assert.Equal(t, envDir, got, "no double .bisko suffix")
}

func TestResolveProjectDir_WalkUp(t *testing.T) {
	t.Setenv("BISKO_PROJECT_DIR", "")
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".bisko"), 0o750))

	subDir := filepath.Join(root, "regions", "nds")
	require.NoError(t, os.MkdirAll(subDir, 0o750))

	got := config.ResolveProjectDir(context.Background(), "", subDir)

	assert.Equal(t, filepath.Join(root, ".bisko"), got)
}

func TestResolveProjectDir_NoProject(t *testing.T) {
	t.Setenv("BISKO_PROJECT_DIR", "")

	got := config.ResolveProjectDir(context.Background(), "", t.TempDir())

	assert.Empty(t, got)
}

func TestNewWithProjectDir(t *testing.T) {
	t.Setenv("BISKO_HOME", t.TempDir())
	t.Setenv("BISKO_OUTPUT_FORMAT", "")
	t.Setenv("BISKO_LOG_LEVEL", "")
	t.Setenv("BISKO_LOG_FORMAT", "")

	t.Run("empty project dir", func(t *testing.T) {
		cfg := config.NewWithProjectDir(context.Background(), "")
		assert.Equal(t, config.Default().Output, cfg.Output)
	})

	t.Run("overlay applied", func(t *testing.T) {
		projectDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"),
			[]byte("calc:\n  parallel: false\n  concurrency: 2\n"), 0o600))

		cfg := config.NewWithProjectDir(context.Background(), projectDir)
		assert.False(t, cfg.Calc.Parallel)
		assert.Equal(t, 2, cfg.Calc.Concurrency)
		assert.Equal(t, "table", cfg.Output.DefaultFormat)
	})

	t.Run("broken overlay falls back", func(t *testing.T) {
		projectDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte("calc: [\n"), 0o600))

		cfg := config.NewWithProjectDir(context.Background(), projectDir)
		assert.Equal(t, config.Default().Calc, cfg.Calc)
	})

	t.Run("environment beats overlay", func(t *testing.T) {
		t.Setenv("BISKO_OUTPUT_FORMAT", "ndjson")
		projectDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"),
			[]byte("output:\n  default_format: json\n  precision: 1\n"), 0o600))

		cfg := config.NewWithProjectDir(context.Background(), projectDir)
		assert.Equal(t, "ndjson", cfg.Output.DefaultFormat)
		assert.Equal(t, 1, cfg.Output.Precision)
	})
}

func TestEnsureGitignore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".bisko")

	created, err := config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(data))

	created, err = config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.False(t, created, "existing .gitignore is kept")
}

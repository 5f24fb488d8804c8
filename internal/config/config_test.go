package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexigraph/graphql/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 8, cfg.SubscriptionBufferSize)
	require.False(t, cfg.DefaultFieldResolverStrict)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("executorConcurrency: 4\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.ExecutorConcurrency)
	require.Equal(t, 8, cfg.SubscriptionBufferSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
}

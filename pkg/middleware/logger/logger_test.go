package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.log")
	Init(&LogConfig{
		Path:     path,
		LogLevel: "info",
		ServiceEnv: ServiceEnv{
			Platform: "pubchem",
			Service:  "test",
			Env:      "test",
		},
	})

	ctx := context.Background()
	Debugf(ctx, "hidden %d", 1)
	Infof(ctx, "cid lookup name: %s", "aspirin")
	Warnf(ctx, "sdf http code: %d", 404)
	Close()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "cid lookup name: aspirin")
	assert.Contains(t, out, "sdf http code: 404")
	assert.Contains(t, out, `"service":"test"`)
	assert.NotContains(t, out, "hidden 1")
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.log")
	Init(&LogConfig{Path: path, LogLevel: "verbose", ServiceEnv: ServiceEnv{Env: "test"}})

	Infof(context.Background(), "still logged")
	Close()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "still logged")
}

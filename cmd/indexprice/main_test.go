package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"indexprice/internal/domain/model"
)

const memoryConfig = `
database:
  store: memory
source:
  mode: test
ingestion:
  currencies: [btc, eth]
  max_attempts: 1
  retry_delay: 1ms
logging:
  level: error
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFetchCommand(t *testing.T) {
	// Arrange: an in-memory store and the synthetic source.
	path := writeConfig(t, memoryConfig)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"fetch", "--config", path, "--currency", "ETH"})

	// Act
	err := cmd.ExecuteContext(context.Background())

	// Assert
	require.NoError(t, err)

	var result model.RunResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Equal(t, "eth_usd", result.Ticker)
	require.Equal(t, model.OutcomeSuccess, result.Outcome)
	require.Equal(t, 1, result.Attempts)
	require.NotZero(t, result.TickID)
}

func TestMigrateCommand_MemoryStore(t *testing.T) {
	path := writeConfig(t, memoryConfig)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--config", path})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

func TestServeCommand_StopsOnCancel(t *testing.T) {
	path := writeConfig(t, memoryConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"worker", "--config", path})

	require.NoError(t, cmd.ExecuteContext(ctx))
}

func TestMissingConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fetch", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}

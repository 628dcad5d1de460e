package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"finance-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	newLogger(config.LoggingConfig{Level: "info", Format: "json"}, &buf).Info("hello", "k", "v")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])

	buf.Reset()
	newLogger(config.LoggingConfig{Level: "info", Format: "text"}, &buf).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello k=v")
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestRootCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["networth"])

	recalc, _, err := rootCmd.Find([]string{"networth", "recalculate"})
	require.NoError(t, err)
	assert.NotNil(t, recalc.Flags().Lookup("year"))
	assert.NotNil(t, recalc.Flags().Lookup("month"))
}

func TestMigrateRejectsSQLite(t *testing.T) {
	cfg = &config.Config{Database: config.DatabaseConfig{Driver: config.DriverSQLite}}
	t.Cleanup(func() { cfg = nil })

	err := withMigrationRunner(nil)(migrateCmd(), nil)

	assert.ErrorIs(t, err, errMigrateNeedsPostgres)
}

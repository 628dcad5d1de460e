package database

import (
	"testing"

	"finance-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"})

	assert.ErrorIs(t, err, config.ErrUnsupportedDriver)
}

func TestInitialize_SQLiteMigratesSchema(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   t.TempDir() + "/finance.db",
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range testTables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, db.HealthCheck())
}

func TestSetupTestDB_NetWorthIsUniquePerMonth(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	err := db.Exec("INSERT INTO net_worth (year_value, month_value, assets, liabilities, version, created_at, updated_at) VALUES (2024, 1, 10, 5, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)").Error
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("net_worth").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	err = db.Exec("INSERT INTO net_worth (year_value, month_value, assets, liabilities, version, created_at, updated_at) VALUES (2024, 1, 1, 1, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)").Error
	assert.Error(t, err, "one snapshot per month")
}

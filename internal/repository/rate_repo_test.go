package repository

import (
	"fmt"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.NewDB(&config.DatabaseConfig{
		DSN:             dsn,
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestRateForFallsBackToDefault(t *testing.T) {
	rates := NewRateRepository(setupDB(t), 1.5)

	require.Equal(t, 1.5, rates.RateFor("unconfigured"))
}

func TestSetRateUpsert(t *testing.T) {
	rates := NewRateRepository(setupDB(t), 1)

	require.NoError(t, rates.SetRate("partner1", 2))
	require.Equal(t, 2.0, rates.RateFor("partner1"))

	require.NoError(t, rates.SetRate("partner1", 2.5))
	require.Equal(t, 2.5, rates.RateFor("partner1"))
}

func TestSetRateAcceptsAnyValue(t *testing.T) {
	rates := NewRateRepository(setupDB(t), 1)

	require.NoError(t, rates.SetRate("zero", 0))
	require.Equal(t, 0.0, rates.RateFor("zero"))
	require.NoError(t, rates.SetRate("negative", -0.5))
	require.Equal(t, -0.5, rates.RateFor("negative"))
}

func TestSnapshot(t *testing.T) {
	rates := NewRateRepository(setupDB(t), 1)

	require.NoError(t, rates.SetRate("partner1", 2))
	require.NoError(t, rates.SetRate("partner2", 1.5))

	def, partners, err := rates.Snapshot()
	require.NoError(t, err)
	require.Equal(t, 1.0, def)
	require.Equal(t, map[string]float64{"partner1": 2, "partner2": 1.5}, partners)
}

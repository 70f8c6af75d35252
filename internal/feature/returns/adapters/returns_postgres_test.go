package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&ReturnsModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestReturnsPostgres_ListAll(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewReturnsRepository(db)

	r1d := 0.5
	r1y := 22.5
	vol := 18.2
	sharpe := 1.4
	err := db.Create(&ReturnsModel{
		Symbol:          "AAPL",
		CalculationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Return1D:        &r1d,
		Return1Y:        &r1y,
		Volatility30D:   &vol,
		SharpeRatio:     &sharpe,
	}).Error
	require.NoError(t, err)

	rows, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	s := rows[0]
	assert.Equal(t, "AAPL", s.Symbol)
	require.NotNil(t, s.Return1D)
	assert.Equal(t, r1d, *s.Return1D)
	require.NotNil(t, s.Return1Y)
	assert.Equal(t, r1y, *s.Return1Y)
	require.NotNil(t, s.Volatility30D)
	assert.Equal(t, vol, *s.Volatility30D)
	require.NotNil(t, s.SharpeRatio)
	assert.Equal(t, sharpe, *s.SharpeRatio)
	assert.Nil(t, s.MaxDrawdown)
}

func TestReturnsPostgres_ListAll_Empty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewReturnsRepository(db)

	rows, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rows)
}

package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autosalon/internal/domain"
)

func TestConnectAndMigrate_SQLiteMemory(t *testing.T) {
	dsn := fmt.Sprintf("file:database_test_%s?mode=memory&cache=shared", t.Name())
	db, err := Connect(dsn, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "brands", "cars", "car_images", "purchase_requests", "storage_entries"} {
		require.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	brand := domain.Brand{Name: "Toyota", Country: "Japan"}
	require.NoError(t, db.Create(&brand).Error)
	require.NotZero(t, brand.ID)
}

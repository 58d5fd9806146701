package store

import (
	"fmt"
	"testing"

	"linkup/backend/internal/database"
	"linkup/backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq int

// testGateway opens a fresh in-memory database with the real schema.
func testGateway(t *testing.T) *database.Gateway {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	return database.NewGateway(db, database.DefaultRetries)
}

func createUser(t *testing.T, gw *database.Gateway, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, gw.DB().Create(user).Error)
	return user
}

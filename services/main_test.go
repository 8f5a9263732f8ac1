package services

import (
	"testing"

	"blogapp/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存 sqlite 库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 单连接，保证所有查询落在同一个内存库上
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Article{},
		&models.Category{},
		&models.Tag{},
		&models.Comment{},
		&models.OauthUser{},
		&models.Chat{},
	)
	require.NoError(t, err)

	return db
}

package util

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/cartabinaria/survey/models"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Question{}, &models.Answer{}, &models.Vote{}))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()
	user, err := GetOrCreateUserByID(db, id, fmt.Sprintf("user%d", id))
	require.NoError(t, err)
	return user
}

func newTestQuestion(t *testing.T, db *gorm.DB, author uint, title string, created time.Time) *models.Question {
	t.Helper()
	question, err := CreateQuestion(db, author, title, "", created)
	require.NoError(t, err)
	return question
}

func intp(v int) *int {
	return &v
}

package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/cartabinaria/survey/models"
	"github.com/cartabinaria/survey/util"
)

// openTestDb wires an in-memory database into the package-wide handle
// the handlers read from.
func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Question{}, &models.Answer{}, &models.Vote{}))
	util.SetDb(db)
	return db
}

func newTestQuestion(t *testing.T, db *gorm.DB, created time.Time) *models.Question {
	t.Helper()
	user, err := util.GetOrCreateUserByID(db, 1, "author")
	require.NoError(t, err)
	question, err := util.CreateQuestion(db, user.ID, fmt.Sprintf("question %s", created.Format(models.DateLayout)), "", created)
	require.NoError(t, err)
	return question
}

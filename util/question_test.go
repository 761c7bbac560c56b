package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cartabinaria/survey/models"
)

func TestCreateQuestion(t *testing.T) {
	now := time.Now()

	t.Run("persists with today's date", func(t *testing.T) {
		db := openTestDb(t)
		user := newTestUser(t, db, 1)

		question, err := CreateQuestion(db, user.ID, "how was the exercise?", "about the assignment", now)
		require.NoError(t, err)
		assert.Equal(t, "how was the exercise?", question.Title)
		assert.Equal(t, "about the assignment", question.Description)
		assert.Equal(t, user.ID, question.UserID)
		assert.Equal(t, now.Format(models.DateLayout), question.Created)

		// the creation date must come back from the store byte for byte,
		// not re-typed into a timestamp by the driver
		var stored models.Question
		require.NoError(t, db.First(&stored, question.ID).Error)
		assert.Equal(t, now.Format(models.DateLayout), stored.Created)
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		db := openTestDb(t)
		user := newTestUser(t, db, 1)

		_, err := CreateQuestion(db, user.ID, "", "no title here", now)
		assert.ErrorIs(t, err, ErrQuestionNoTitle)
	})

	t.Run("rejects a missing author", func(t *testing.T) {
		db := openTestDb(t)

		_, err := CreateQuestion(db, 0, "orphan question", "", now)
		assert.ErrorIs(t, err, ErrQuestionNoAuthor)
	})
}

func TestUpdateQuestion(t *testing.T) {
	now := time.Now()

	t.Run("edits title and description only", func(t *testing.T) {
		db := openTestDb(t)
		user := newTestUser(t, db, 1)
		question := newTestQuestion(t, db, user.ID, "first title", now)

		updated, err := UpdateQuestion(db, question.ID, "second title", "with details")
		require.NoError(t, err)
		assert.Equal(t, "second title", updated.Title)
		assert.Equal(t, "with details", updated.Description)
		assert.Equal(t, question.UserID, updated.UserID)
		assert.Equal(t, question.Created, updated.Created)
	})

	t.Run("unknown id", func(t *testing.T) {
		db := openTestDb(t)

		_, err := UpdateQuestion(db, 42, "title", "")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		db := openTestDb(t)
		user := newTestUser(t, db, 1)
		question := newTestQuestion(t, db, user.ID, "first title", now)

		_, err := UpdateQuestion(db, question.ID, "", "")
		assert.ErrorIs(t, err, ErrQuestionNoTitle)
	})
}

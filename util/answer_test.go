package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cartabinaria/survey/models"
)

func TestPutAnswer(t *testing.T) {
	now := time.Now()

	t.Run("creates then overwrites in place", func(t *testing.T) {
		db := openTestDb(t)
		user := newTestUser(t, db, 1)
		question := newTestQuestion(t, db, user.ID, "a question", now)

		answer, err := PutAnswer(db, question.ID, user.ID, intp(5), "great exercise")
		require.NoError(t, err)
		assert.Equal(t, 5, answer.Value)
		assert.Equal(t, "great exercise", answer.Comment)

		// same value again: still a single row
		_, err = PutAnswer(db, question.ID, user.ID, intp(5), "")
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&models.Answer{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		// a different value overwrites, without a second row
		answer, err = PutAnswer(db, question.ID, user.ID, intp(2), "")
		require.NoError(t, err)
		assert.Equal(t, 2, answer.Value)

		require.NoError(t, db.Model(&models.Answer{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("keeps the old comment when none is supplied", func(t *testing.T) {
		db := openTestDb(t)
		user := newTestUser(t, db, 1)
		question := newTestQuestion(t, db, user.ID, "a question", now)

		_, err := PutAnswer(db, question.ID, user.ID, intp(3), "first thoughts")
		require.NoError(t, err)
		answer, err := PutAnswer(db, question.ID, user.ID, intp(4), "")
		require.NoError(t, err)
		assert.Equal(t, 4, answer.Value)
		assert.Equal(t, "first thoughts", answer.Comment)
	})

	t.Run("answers from different users stay separate", func(t *testing.T) {
		db := openTestDb(t)
		user := newTestUser(t, db, 1)
		other := newTestUser(t, db, 2)
		question := newTestQuestion(t, db, user.ID, "a question", now)

		_, err := PutAnswer(db, question.ID, user.ID, intp(1), "")
		require.NoError(t, err)
		_, err = PutAnswer(db, question.ID, other.ID, intp(5), "")
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&models.Answer{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("validation", func(t *testing.T) {
		db := openTestDb(t)
		user := newTestUser(t, db, 1)
		question := newTestQuestion(t, db, user.ID, "a question", now)

		_, err := PutAnswer(db, 0, user.ID, intp(3), "")
		assert.ErrorIs(t, err, ErrAnswerNoQuestion)

		_, err = PutAnswer(db, question.ID, 0, intp(3), "")
		assert.ErrorIs(t, err, ErrAnswerNoAuthor)

		_, err = PutAnswer(db, question.ID, user.ID, nil, "")
		assert.ErrorIs(t, err, ErrAnswerNoValue)

		_, err = PutAnswer(db, question.ID, user.ID, intp(7), "")
		assert.ErrorIs(t, err, ErrAnswerBadValue)

		_, err = PutAnswer(db, question.ID+100, user.ID, intp(3), "")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kataras/muxie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartabinaria/survey/models"
	"github.com/cartabinaria/survey/util"
)

var testWeights = util.Weights{
	Answer:     10,
	Like:       5,
	Dislike:    -3,
	DailyBonus: 20,
}

func TestQuestionListHandler(t *testing.T) {
	db := openTestDb(t)
	now := time.Now()

	// the fresh question carries the daily bonus and must come first
	old := newTestQuestion(t, db, now.AddDate(0, 0, -1))
	fresh := newTestQuestion(t, db, now)

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	rec := httptest.NewRecorder()
	QuestionListHandler(testWeights)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var questions []util.RankedQuestion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&questions))
	require.Len(t, questions, 2)

	assert.Equal(t, fresh.ID, questions[0].ID)
	assert.Equal(t, int64(testWeights.DailyBonus), questions[0].Points)
	assert.Equal(t, old.ID, questions[1].ID)
	assert.Equal(t, int64(0), questions[1].Points)
}

func TestGetQuestionHandlerDailyBonus(t *testing.T) {
	db := openTestDb(t)
	now := time.Now()
	fresh := newTestQuestion(t, db, now)

	// through the mux, so the handler computes points on the row it
	// loads from the store; it must agree with the ranked listing
	mux := muxie.NewMux()
	mux.Handle("/questions/:id", GetQuestionHandler(testWeights))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/questions/%d", fresh.ID), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var question QuestionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&question))
	assert.Equal(t, fresh.ID, question.ID)
	assert.Equal(t, int64(testWeights.DailyBonus), question.Points)
	assert.Equal(t, now.Format(models.DateLayout), question.Created)
}

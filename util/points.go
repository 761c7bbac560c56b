package util

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cartabinaria/survey/models"
)

// Weights is the process-wide scoring configuration, read from the
// [ranking] config table at startup and threaded by value into both
// scoring paths so they always agree.
type Weights struct {
	Answer     int `toml:"answer_points"`
	Like       int `toml:"like_points"`
	Dislike    int `toml:"dislike_points"`
	DailyBonus int `toml:"daily_bonus_points"`
}

// Each term is counted on its own (distinct ids per category) because the
// answers×votes join fans out rows: a plain count over the joined rows
// would multiply answers by votes.
const POINTS_EXPR = `
           count(distinct answers.id)                                    * @answer_points +
           count(distinct case when votes.is_like     then votes.id end) * @like_points +
           count(distinct case when not votes.is_like then votes.id end) * @dislike_points +
           case when questions.created = @today then @daily_bonus else 0 end`

var (
	RANKED_QUERY = fmt.Sprintf(`
  select   questions.*, %s as points
  from     questions
  left join answers on answers.question_id = questions.id
  left join votes   on votes.question_id   = questions.id
  group by questions.id
  order by points desc, questions.id asc
  limit @limit offset @offset
`, POINTS_EXPR)
	RANKED_USER_QUERY = fmt.Sprintf(`
  select   questions.*, %s as points,
           coalesce((select value from answers
                     where answers.question_id = questions.id and answers.user_id = @user), 0) as user_value,
           (select is_like from votes
            where votes.question_id = questions.id and votes.user_id = @user) as is_like
  from     questions
  left join answers on answers.question_id = questions.id
  left join votes   on votes.question_id   = questions.id
  group by questions.id
  order by points desc, questions.id asc
  limit @limit offset @offset
`, POINTS_EXPR)
)

// RankedQuestion is a question row annotated with its computed points
// and, when the caller is authenticated, with the caller's own answer
// value (0 if none) and vote flag (null if none).
type RankedQuestion struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Created     string `json:"created"`
	UserID      uint   `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Points    int64 `json:"points"`
	UserValue int   `json:"user_value"`
	IsLike    *bool `json:"is_like"`
}

// QuestionPoints computes a single question's score: one weighted term
// per answer, like and dislike, plus the daily bonus when the question
// was created on now's calendar date. Three count queries per call, so
// fine for a single question but not for listings; those go through
// RankedQuestions instead.
func QuestionPoints(db *gorm.DB, question *models.Question, w Weights, now time.Time) (int64, error) {
	var answers, likes, dislikes int64
	if err := db.Model(&models.Answer{}).
		Where("question_id = ?", question.ID).
		Count(&answers).Error; err != nil {
		return 0, fmt.Errorf("failed to count answers: %w", err)
	}
	if err := db.Model(&models.Vote{}).
		Where("question_id = ? and is_like = ?", question.ID, true).
		Count(&likes).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	if err := db.Model(&models.Vote{}).
		Where("question_id = ? and is_like = ?", question.ID, false).
		Count(&dislikes).Error; err != nil {
		return 0, fmt.Errorf("failed to count dislikes: %w", err)
	}

	points := answers*int64(w.Answer) + likes*int64(w.Like) + dislikes*int64(w.Dislike)
	if question.Created == now.Format(models.DateLayout) {
		points += int64(w.DailyBonus)
	}
	return points, nil
}

// RankedQuestions returns questions ordered by points, descending, in a
// single aggregate query. Ties break on the question id so the order is
// stable across calls.
func RankedQuestions(db *gorm.DB, w Weights, now time.Time, limit, offset int) ([]RankedQuestion, error) {
	var questions []RankedQuestion
	err := db.Raw(RANKED_QUERY,
		sql.Named("answer_points", w.Answer),
		sql.Named("like_points", w.Like),
		sql.Named("dislike_points", w.Dislike),
		sql.Named("daily_bonus", w.DailyBonus),
		sql.Named("today", now.Format(models.DateLayout)),
		sql.Named("limit", limit),
		sql.Named("offset", offset),
	).Scan(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank questions: %w", err)
	}
	return questions, nil
}

// RankedQuestionsForUser is RankedQuestions plus the caller's own answer
// and vote on each row, fetched as per-row scalar subqueries so they
// never touch the grouped join.
func RankedQuestionsForUser(db *gorm.DB, w Weights, now time.Time, userID uint, limit, offset int) ([]RankedQuestion, error) {
	var questions []RankedQuestion
	err := db.Raw(RANKED_USER_QUERY,
		sql.Named("answer_points", w.Answer),
		sql.Named("like_points", w.Like),
		sql.Named("dislike_points", w.Dislike),
		sql.Named("daily_bonus", w.DailyBonus),
		sql.Named("today", now.Format(models.DateLayout)),
		sql.Named("user", userID),
		sql.Named("limit", limit),
		sql.Named("offset", offset),
	).Scan(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank questions: %w", err)
	}
	return questions, nil
}

package util

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cartabinaria/survey/models"
)

var (
	ErrAnswerNoQuestion = errors.New("answer requires a question")
	ErrAnswerNoAuthor   = errors.New("answer requires an author")
	ErrAnswerNoValue    = errors.New("answer requires a value")
	ErrAnswerBadValue   = errors.New("answer value must be between 0 and 5")
)

// PutAnswer records the author's answer to a question. There is at most
// one answer per (author, question): a repeat submission overwrites the
// value (and the comment, when one is supplied) in place. The unique
// index is the authoritative duplicate guard, so two concurrent first
// submissions resolve through the conflict clause instead of failing.
func PutAnswer(db *gorm.DB, questionID, userID uint, value *int, comment string) (*models.Answer, error) {
	if questionID == 0 {
		return nil, ErrAnswerNoQuestion
	}
	if userID == 0 {
		return nil, ErrAnswerNoAuthor
	}
	if value == nil {
		return nil, ErrAnswerNoValue
	}
	if *value < models.AnswerValueNone || *value > models.AnswerValueMax {
		return nil, ErrAnswerBadValue
	}

	if err := db.First(&models.Question{}, questionID).Error; err != nil {
		return nil, err
	}

	assign := []string{"value", "updated_at"}
	if comment != "" {
		assign = append(assign, "comment")
	}

	answer := models.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Value:      *value,
		Comment:    comment,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(assign),
	}).Create(&answer).Error
	if err != nil {
		return nil, err
	}

	// re-read so the caller sees the stored row, whichever branch the
	// upsert took
	var saved models.Answer
	if err := db.Where("question_id = ? and user_id = ?", questionID, userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

package util

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cartabinaria/survey/models"
)

var (
	ErrVoteNoQuestion = errors.New("vote requires a question")
	ErrVoteNoAuthor   = errors.New("vote requires an author")
)

// PutVote records the author's like/dislike on a question, one row per
// (author, question). Voting again flips the flag in place; there is no
// retraction, so a row never goes away short of a cascade delete.
func PutVote(db *gorm.DB, questionID, userID uint, isLike bool) (*models.Vote, error) {
	if questionID == 0 {
		return nil, ErrVoteNoQuestion
	}
	if userID == 0 {
		return nil, ErrVoteNoAuthor
	}

	if err := db.First(&models.Question{}, questionID).Error; err != nil {
		return nil, err
	}

	vote := models.Vote{
		QuestionID: questionID,
		UserID:     userID,
		IsLike:     isLike,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_like", "updated_at"}),
	}).Create(&vote).Error
	if err != nil {
		return nil, err
	}

	var saved models.Vote
	if err := db.Where("question_id = ? and user_id = ?", questionID, userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

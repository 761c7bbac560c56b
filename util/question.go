package util

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cartabinaria/survey/models"
)

var (
	ErrQuestionNoAuthor = errors.New("question requires an author")
	ErrQuestionNoTitle  = errors.New("question requires a title")
)

// CreateQuestion validates and persists a new question. Its creation
// date is now's calendar date and never changes afterwards.
func CreateQuestion(db *gorm.DB, authorID uint, title, description string, now time.Time) (*models.Question, error) {
	if authorID == 0 {
		return nil, ErrQuestionNoAuthor
	}
	if title == "" {
		return nil, ErrQuestionNoTitle
	}

	question := models.Question{
		Created:     now.Format(models.DateLayout),
		UserID:      authorID,
		Title:       title,
		Description: description,
	}
	if err := db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion replaces the title and description of an existing
// question. Author and creation date are immutable.
func UpdateQuestion(db *gorm.DB, id uint, title, description string) (*models.Question, error) {
	if title == "" {
		return nil, ErrQuestionNoTitle
	}

	var question models.Question
	if err := db.First(&question, id).Error; err != nil {
		return nil, err
	}

	question.Title = title
	question.Description = description
	if err := db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

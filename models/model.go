package models

import (
	"time"
)

// DateLayout is the format of Question.Created. The daily bonus compares
// this local calendar date, not the full creation timestamp.
const DateLayout = "2006-01-02"

// Answer values form a fixed ordinal scale, 0 meaning "unanswered".
const (
	AnswerValueNone = 0
	AnswerValueMax  = 5
)

// User mirrors the identity handed to us by the auth service, so that
// questions, answers and votes have a real row to cascade from.
type User struct {
	ID       uint   `json:"-" gorm:"primarykey"`
	Username string `json:"username"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Questions []Question `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Answers   []Answer   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Votes     []Vote     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

type Question struct {
	// taken from from gorm.Model, so we can json strigify properly
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Created is the calendar date the question was posted, set once,
	// always in DateLayout form. Kept as text so it round-trips through
	// the store byte for byte: a date-typed column comes back from the
	// driver as a timestamp, which would break the daily-bonus equality.
	Created string `json:"created" gorm:"not null"`

	UserID      uint   `json:"author" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`

	Answers []Answer `json:"-" gorm:"foreignKey:QuestionID;references:ID;constraint:OnDelete:CASCADE"`
	Votes   []Vote   `json:"-" gorm:"foreignKey:QuestionID;references:ID;constraint:OnDelete:CASCADE"`
}

// Answer is a user's ordinal response to a question. At most one row
// exists per (author, question); repeat submissions update it in place.
type Answer struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	QuestionID uint   `json:"question" gorm:"uniqueIndex:idx_answers_author_question;not null"`
	UserID     uint   `json:"-" gorm:"uniqueIndex:idx_answers_author_question;not null"`
	Value      int    `json:"value" gorm:"not null"`
	Comment    string `json:"comment"`
}

// Vote is a user's like/dislike on a question, one row per
// (author, question). "No vote yet" is the absence of the row: a stored
// vote always carries an explicit flag.
type Vote struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	QuestionID uint `json:"question" gorm:"uniqueIndex:idx_votes_author_question;not null"`
	UserID     uint `json:"-" gorm:"uniqueIndex:idx_votes_author_question;not null"`
	IsLike     bool `json:"is_like" gorm:"not null"`
}

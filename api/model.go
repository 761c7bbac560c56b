package api

import (
	"time"
)

type PostQuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateQuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PutAnswerRequest struct {
	Question uint   `json:"question"`
	Value    *int   `json:"value"`
	Comment  string `json:"comment"`
}

type PutVoteRequest struct {
	Question uint   `json:"question"`
	Value    string `json:"value"`
}

// StatusResponse is the flag contract of the submission endpoints: the
// request was understood but may have been rejected, with per-field
// messages when it was.
type StatusResponse struct {
	OK     bool              `json:"ok"`
	Errors map[string]string `json:"errors,omitempty"`
}

type QuestionResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Created     string `json:"created"`
	Author      uint   `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Points    int64 `json:"points"`
	UserValue int   `json:"user_value"`
	IsLike    *bool `json:"is_like"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is the input shape for creating a question.
type Question struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// QuestionDetail is a persisted question. QuestionUUID and CreatedAt are
// assigned by storage.
type QuestionDetail struct {
	QuestionUUID uuid.UUID `json:"question_uuid"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

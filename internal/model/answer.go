package model

import (
	"time"

	"github.com/google/uuid"
)

// Answer is the input shape for creating an answer. QuestionUUID is the raw
// identifier supplied by the caller and is parsed by the repository.
type Answer struct {
	QuestionUUID string `json:"question_uuid"`
	Content      string `json:"content"`
}

// AnswerDetail is a persisted answer.
type AnswerDetail struct {
	AnswerUUID   uuid.UUID `json:"answer_uuid"`
	QuestionUUID uuid.UUID `json:"question_uuid"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

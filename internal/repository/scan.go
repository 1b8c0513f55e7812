package repository

import (
	"fmt"

	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Identifiers are scanned as text and parsed here so the stores do not
// depend on the driver's uuid codec.

func scanQuestion(row pgx.Row) (model.QuestionDetail, error) {
	var (
		q  model.QuestionDetail
		id string
	)
	if err := row.Scan(&id, &q.Title, &q.Description, &q.CreatedAt); err != nil {
		return model.QuestionDetail{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return model.QuestionDetail{}, fmt.Errorf("stored question_uuid %q: %w", id, err)
	}
	q.QuestionUUID = parsed
	return q, nil
}

func scanAnswer(row pgx.Row) (model.AnswerDetail, error) {
	var (
		a                  model.AnswerDetail
		answerID, question string
	)
	if err := row.Scan(&answerID, &question, &a.Content, &a.CreatedAt); err != nil {
		return model.AnswerDetail{}, err
	}

	var err error
	if a.AnswerUUID, err = uuid.Parse(answerID); err != nil {
		return model.AnswerDetail{}, fmt.Errorf("stored answer_uuid %q: %w", answerID, err)
	}
	if a.QuestionUUID, err = uuid.Parse(question); err != nil {
		return model.AnswerDetail{}, fmt.Errorf("stored question_uuid %q: %w", question, err)
	}
	return a, nil
}

func collectQuestion(row pgx.CollectableRow) (model.QuestionDetail, error) {
	return scanQuestion(row)
}

func collectAnswer(row pgx.CollectableRow) (model.AnswerDetail, error) {
	return scanAnswer(row)
}

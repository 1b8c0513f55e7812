package repository

import (
	"context"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ AnswerStore = (*AnswerRepository)(nil)

type AnswerRepository struct {
	db DBTX
}

func NewAnswerRepository(db DBTX) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// CreateAnswer inserts answer. A foreign key violation is reported as
// InvalidUUID naming the caller's question_uuid, not the server message.
func (r *AnswerRepository) CreateAnswer(ctx context.Context, answer model.Answer) (model.AnswerDetail, error) {
	questionID, err := uuid.Parse(answer.QuestionUUID)
	if err != nil {
		return model.AnswerDetail{}, errs.NewInvalidUUIDError(err.Error())
	}

	stmt := `
		INSERT INTO
			answers (question_uuid, content)
		VALUES
			($1, $2)
		RETURNING
			answer_uuid, question_uuid, content, created_at
	`

	detail, err := scanAnswer(r.db.QueryRow(ctx, stmt, questionID, answer.Content))
	if err != nil {
		if sqlerr.IsForeignKeyViolation(err) {
			return model.AnswerDetail{}, errs.NewMissingQuestionError(answer.QuestionUUID)
		}
		return model.AnswerDetail{}, errs.NewOtherError(err)
	}

	return detail, nil
}

func (r *AnswerRepository) GetAnswers(ctx context.Context, questionUUID string) ([]model.AnswerDetail, error) {
	questionID, err := uuid.Parse(questionUUID)
	if err != nil {
		return nil, errs.NewInvalidUUIDError(err.Error())
	}

	stmt := `
		SELECT
			answer_uuid, question_uuid, content, created_at
		FROM
			answers
		WHERE
			question_uuid = $1
	`

	rows, err := r.db.Query(ctx, stmt, questionID)
	if err != nil {
		return nil, errs.NewOtherError(err)
	}

	answers, err := pgx.CollectRows(rows, collectAnswer)
	if err != nil {
		return nil, errs.NewOtherError(err)
	}

	if answers == nil {
		answers = []model.AnswerDetail{}
	}

	return answers, nil
}

func (r *AnswerRepository) DeleteAnswer(ctx context.Context, answerUUID string) error {
	id, err := uuid.Parse(answerUUID)
	if err != nil {
		return errs.NewInvalidUUIDError(err.Error())
	}

	stmt := `
		DELETE FROM
			answers
		WHERE
			answer_uuid = $1
	`

	if _, err := r.db.Exec(ctx, stmt, id); err != nil {
		return errs.NewOtherError(err)
	}

	return nil
}

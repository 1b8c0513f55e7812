package repository

import (
	"context"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ QuestionStore = (*QuestionRepository)(nil)

type QuestionRepository struct {
	db DBTX
}

func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, question model.Question) (model.QuestionDetail, error) {
	stmt := `
		INSERT INTO
			questions (title, description)
		VALUES
			($1, $2)
		RETURNING
			question_uuid, title, description, created_at
	`

	detail, err := scanQuestion(r.db.QueryRow(ctx, stmt, question.Title, question.Description))
	if err != nil {
		return model.QuestionDetail{}, errs.NewOtherError(err)
	}

	return detail, nil
}

func (r *QuestionRepository) GetQuestions(ctx context.Context) ([]model.QuestionDetail, error) {
	stmt := `
		SELECT
			question_uuid, title, description, created_at
		FROM
			questions
	`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, errs.NewOtherError(err)
	}

	questions, err := pgx.CollectRows(rows, collectQuestion)
	if err != nil {
		return nil, errs.NewOtherError(err)
	}

	if questions == nil {
		questions = []model.QuestionDetail{}
	}

	return questions, nil
}

func (r *QuestionRepository) DeleteQuestion(ctx context.Context, questionUUID string) error {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return errs.NewInvalidUUIDError(err.Error())
	}

	stmt := `
		DELETE FROM
			questions
		WHERE
			question_uuid = $1
	`

	if _, err := r.db.Exec(ctx, stmt, id); err != nil {
		return errs.NewOtherError(err)
	}

	return nil
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

var (
	questionColumns = []string{"question_uuid", "title", "description", "created_at"}
	answerColumns   = []string{"answer_uuid", "question_uuid", "content", "created_at"}
)

func TestQuestionRepository_CreateQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored row", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)

		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`INSERT INTO\s+questions`).
			WithArgs("T", "D").
			WillReturnRows(pgxmock.NewRows(questionColumns).AddRow(id.String(), "T", "D", now))

		got, err := repo.CreateQuestion(ctx, model.Question{Title: "T", Description: "D"})
		require.NoError(t, err)

		assert.Equal(t, model.QuestionDetail{QuestionUUID: id, Title: "T", Description: "D", CreatedAt: now}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure is other", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)

		mock.ExpectQuery(`INSERT INTO\s+questions`).
			WithArgs("T", "D").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.CreateQuestion(ctx, model.Question{Title: "T", Description: "D"})
		assert.ErrorIs(t, err, errs.ErrDBOther)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuestionRepository_GetQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all rows", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)

		now := time.Now()
		first, second := uuid.New(), uuid.New()

		mock.ExpectQuery(`SELECT\s+question_uuid, title, description, created_at\s+FROM\s+questions`).
			WillReturnRows(pgxmock.NewRows(questionColumns).
				AddRow(first.String(), "a", "b", now).
				AddRow(second.String(), "c", "d", now))

		got, err := repo.GetQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0].QuestionUUID)
		assert.Equal(t, second, got[1].QuestionUUID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table is an empty slice", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)

		mock.ExpectQuery(`FROM\s+questions`).
			WillReturnRows(pgxmock.NewRows(questionColumns))

		got, err := repo.GetQuestions(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query failure is other", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)

		mock.ExpectQuery(`FROM\s+questions`).
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "questions" does not exist`})

		_, err := repo.GetQuestions(ctx)
		assert.ErrorIs(t, err, errs.ErrDBOther)
	})
}

func TestQuestionRepository_DeleteQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes by id", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM\s+questions`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeleteQuestion(ctx, id.String()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows matched is success", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM\s+questions`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.NoError(t, repo.DeleteQuestion(ctx, id.String()))
	})

	t.Run("malformed id never reaches storage", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)

		err := repo.DeleteQuestion(ctx, "not-a-uuid")

		var dbErr *errs.DBError
		require.ErrorAs(t, err, &dbErr)
		assert.Equal(t, errs.KindInvalidUUID, dbErr.Kind)
		assert.NotEmpty(t, dbErr.Detail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key failure on delete is other", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewQuestionRepository(mock)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM\s+questions`).
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		assert.ErrorIs(t, repo.DeleteQuestion(ctx, id.String()), errs.ErrDBOther)
	})
}

func TestAnswerRepository_CreateAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored row", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)

		questionID, answerID := uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectQuery(`INSERT INTO\s+answers`).
			WithArgs(questionID, "A").
			WillReturnRows(pgxmock.NewRows(answerColumns).AddRow(answerID.String(), questionID.String(), "A", now))

		got, err := repo.CreateAnswer(ctx, model.Answer{QuestionUUID: questionID.String(), Content: "A"})
		require.NoError(t, err)

		assert.Equal(t, model.AnswerDetail{
			AnswerUUID:   answerID,
			QuestionUUID: questionID,
			Content:      "A",
			CreatedAt:    now,
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed question id never reaches storage", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)

		_, err := repo.CreateAnswer(ctx, model.Answer{QuestionUUID: "abc", Content: "A"})
		assert.ErrorIs(t, err, errs.ErrInvalidUUID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation is invalid uuid", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)
		questionID := uuid.New()

		mock.ExpectQuery(`INSERT INTO\s+answers`).
			WithArgs(questionID, "A").
			WillReturnError(&pgconn.PgError{
				Code:           "23503",
				Message:        `insert or update on table "answers" violates foreign key constraint "answers_question_uuid_fkey"`,
				ConstraintName: "answers_question_uuid_fkey",
			})

		_, err := repo.CreateAnswer(ctx, model.Answer{QuestionUUID: questionID.String(), Content: "A"})

		var dbErr *errs.DBError
		require.ErrorAs(t, err, &dbErr)
		assert.Equal(t, errs.KindInvalidUUID, dbErr.Kind)
		assert.Contains(t, dbErr.Detail, questionID.String())
	})

	t.Run("other constraint violation is other", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)
		questionID := uuid.New()

		mock.ExpectQuery(`INSERT INTO\s+answers`).
			WithArgs(questionID, "A").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.CreateAnswer(ctx, model.Answer{QuestionUUID: questionID.String(), Content: "A"})
		assert.ErrorIs(t, err, errs.ErrDBOther)
	})
}

func TestAnswerRepository_GetAnswers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns answers for the question", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)

		questionID, answerID := uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectQuery(`FROM\s+answers\s+WHERE\s+question_uuid = \$1`).
			WithArgs(questionID).
			WillReturnRows(pgxmock.NewRows(answerColumns).AddRow(answerID.String(), questionID.String(), "A", now))

		got, err := repo.GetAnswers(ctx, questionID.String())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, answerID, got[0].AnswerUUID)
		assert.Equal(t, questionID, got[0].QuestionUUID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no answers is an empty slice", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)
		questionID := uuid.New()

		mock.ExpectQuery(`FROM\s+answers`).
			WithArgs(questionID).
			WillReturnRows(pgxmock.NewRows(answerColumns))

		got, err := repo.GetAnswers(ctx, questionID.String())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("malformed id never reaches storage", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)

		_, err := repo.GetAnswers(ctx, "123")
		assert.ErrorIs(t, err, errs.ErrInvalidUUID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is other", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)
		questionID := uuid.New()

		mock.ExpectQuery(`FROM\s+answers`).
			WithArgs(questionID).
			WillReturnError(context.Canceled)

		_, err := repo.GetAnswers(ctx, questionID.String())
		assert.ErrorIs(t, err, errs.ErrDBOther)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAnswerRepository_DeleteAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("zero rows matched is success", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM\s+answers`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.NoError(t, repo.DeleteAnswer(ctx, id.String()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed id never reaches storage", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)

		assert.ErrorIs(t, repo.DeleteAnswer(ctx, "zzz"), errs.ErrInvalidUUID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec failure is other", func(t *testing.T) {
		mock := setupMock(t)
		repo := NewAnswerRepository(mock)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM\s+answers`).
			WithArgs(id).
			WillReturnError(errors.New("broken pipe"))

		assert.ErrorIs(t, repo.DeleteAnswer(ctx, id.String()), errs.ErrDBOther)
	})
}

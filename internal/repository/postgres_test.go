package repository

import (
	"context"
	"os"
	"testing"

	"github.com/deppfellow/go-qna/internal/database"
	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPostgres connects to TEST_POSTGRES_DSN, applies the migrations and
// empties both tables afterwards. Tests skip when the variable is unset.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	conn, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, database.MigrateConn(ctx, &logger, conn))
	require.NoError(t, conn.Close(ctx))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "DELETE FROM answers")
		_, _ = pool.Exec(ctx, "DELETE FROM questions")
		pool.Close()
	})
	return pool
}

func TestPostgres_QuestionAndAnswerLifecycle(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	questions := NewQuestionRepository(pool)
	answers := NewAnswerRepository(pool)

	question, err := questions.CreateQuestion(ctx, model.Question{Title: "T", Description: "D"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, question.QuestionUUID)
	assert.False(t, question.CreatedAt.IsZero())

	listed, err := questions.GetQuestions(ctx)
	require.NoError(t, err)
	assert.Contains(t, listed, question)

	answer, err := answers.CreateAnswer(ctx, model.Answer{QuestionUUID: question.QuestionUUID.String(), Content: "A"})
	require.NoError(t, err)
	assert.Equal(t, question.QuestionUUID, answer.QuestionUUID)

	got, err := answers.GetAnswers(ctx, question.QuestionUUID.String())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, answer, got[0])

	t.Run("deleting a question with answers is other", func(t *testing.T) {
		err := questions.DeleteQuestion(ctx, question.QuestionUUID.String())
		assert.ErrorIs(t, err, errs.ErrDBOther)
	})

	require.NoError(t, answers.DeleteAnswer(ctx, answer.AnswerUUID.String()))
	require.NoError(t, answers.DeleteAnswer(ctx, answer.AnswerUUID.String()))
	require.NoError(t, questions.DeleteQuestion(ctx, question.QuestionUUID.String()))
	require.NoError(t, questions.DeleteQuestion(ctx, question.QuestionUUID.String()))
}

func TestPostgres_AnswerForMissingQuestion(t *testing.T) {
	pool := setupPostgres(t)
	answers := NewAnswerRepository(pool)

	missing := uuid.NewString()
	_, err := answers.CreateAnswer(context.Background(), model.Answer{QuestionUUID: missing, Content: "orphan"})

	var dbErr *errs.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, errs.KindInvalidUUID, dbErr.Kind)
	assert.Contains(t, dbErr.Detail, missing)
}

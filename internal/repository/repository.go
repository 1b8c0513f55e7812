// Package repository holds the data-access objects for questions and
// answers.
//
// The stores own their SQL, parse identifiers before touching storage and
// classify every failure into an *errs.DBError exactly once. The PostgreSQL
// implementations live here; the sqlite ones live in the sqlite subpackage.
package repository

import (
	"context"

	"github.com/deppfellow/go-qna/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the PostgreSQL stores use.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// QuestionStore persists questions.
type QuestionStore interface {
	CreateQuestion(ctx context.Context, question model.Question) (model.QuestionDetail, error)
	GetQuestions(ctx context.Context) ([]model.QuestionDetail, error)
	// DeleteQuestion succeeds when no row matches.
	DeleteQuestion(ctx context.Context, questionUUID string) error
}

// AnswerStore persists answers attached to questions.
type AnswerStore interface {
	CreateAnswer(ctx context.Context, answer model.Answer) (model.AnswerDetail, error)
	// GetAnswers returns an empty slice when the question has no answers or
	// does not exist.
	GetAnswers(ctx context.Context, questionUUID string) ([]model.AnswerDetail, error)
	// DeleteAnswer succeeds when no row matches.
	DeleteAnswer(ctx context.Context, answerUUID string) error
}

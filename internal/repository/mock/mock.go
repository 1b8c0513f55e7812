// Package mock provides in-memory QuestionStore and AnswerStore doubles.
//
// Each operation holds a single canned result. A call takes the result and
// clears it; calling an operation that has no result set panics, which
// surfaces unexpected storage calls in tests.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/repository"
)

var (
	_ repository.QuestionStore = (*QuestionStore)(nil)
	_ repository.AnswerStore   = (*AnswerStore)(nil)
)

type result[T any] struct {
	value T
	err   error
}

// slot holds at most one canned result.
type slot[T any] struct {
	res *result[T]
}

func (s *slot[T]) set(value T, err error) {
	s.res = &result[T]{value: value, err: err}
}

func (s *slot[T]) take(op string) (T, error) {
	if s.res == nil {
		panic(fmt.Sprintf("mock: %s called without a canned result", op))
	}
	res := s.res
	s.res = nil
	return res.value, res.err
}

func (s *slot[T]) pending() bool {
	return s.res != nil
}

type QuestionStore struct {
	mu             sync.Mutex
	createQuestion slot[model.QuestionDetail]
	getQuestions   slot[[]model.QuestionDetail]
	deleteQuestion slot[struct{}]
}

func NewQuestionStore() *QuestionStore {
	return &QuestionStore{}
}

func (m *QuestionStore) MockCreateQuestion(detail model.QuestionDetail, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createQuestion.set(detail, err)
}

func (m *QuestionStore) MockGetQuestions(questions []model.QuestionDetail, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getQuestions.set(questions, err)
}

func (m *QuestionStore) MockDeleteQuestion(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteQuestion.set(struct{}{}, err)
}

func (m *QuestionStore) CreateQuestion(_ context.Context, _ model.Question) (model.QuestionDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createQuestion.take("CreateQuestion")
}

func (m *QuestionStore) GetQuestions(_ context.Context) ([]model.QuestionDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getQuestions.take("GetQuestions")
}

func (m *QuestionStore) DeleteQuestion(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.deleteQuestion.take("DeleteQuestion")
	return err
}

// Pending reports whether any canned result has not been consumed.
func (m *QuestionStore) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createQuestion.pending() || m.getQuestions.pending() || m.deleteQuestion.pending()
}

type AnswerStore struct {
	mu           sync.Mutex
	createAnswer slot[model.AnswerDetail]
	getAnswers   slot[[]model.AnswerDetail]
	deleteAnswer slot[struct{}]
}

func NewAnswerStore() *AnswerStore {
	return &AnswerStore{}
}

func (m *AnswerStore) MockCreateAnswer(detail model.AnswerDetail, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createAnswer.set(detail, err)
}

func (m *AnswerStore) MockGetAnswers(answers []model.AnswerDetail, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getAnswers.set(answers, err)
}

func (m *AnswerStore) MockDeleteAnswer(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteAnswer.set(struct{}{}, err)
}

func (m *AnswerStore) CreateAnswer(_ context.Context, _ model.Answer) (model.AnswerDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createAnswer.take("CreateAnswer")
}

func (m *AnswerStore) GetAnswers(_ context.Context, _ string) ([]model.AnswerDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getAnswers.take("GetAnswers")
}

func (m *AnswerStore) DeleteAnswer(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.deleteAnswer.take("DeleteAnswer")
	return err
}

func (m *AnswerStore) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createAnswer.pending() || m.getAnswers.pending() || m.deleteAnswer.pending()
}

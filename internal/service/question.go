package service

import (
	"context"

	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/repository"
	"github.com/rs/zerolog"
)

type QuestionService struct {
	store  repository.QuestionStore
	logger *zerolog.Logger
}

func NewQuestionService(store repository.QuestionStore, logger *zerolog.Logger) *QuestionService {
	return &QuestionService{store: store, logger: logger}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question model.Question) (model.QuestionDetail, error) {
	detail, err := s.store.CreateQuestion(ctx, question)
	if err != nil {
		return model.QuestionDetail{}, handleDBError(ctx, s.logger, "create_question", err)
	}
	return detail, nil
}

func (s *QuestionService) GetQuestions(ctx context.Context) ([]model.QuestionDetail, error) {
	questions, err := s.store.GetQuestions(ctx)
	if err != nil {
		return nil, handleDBError(ctx, s.logger, "get_questions", err)
	}
	return questions, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, questionUUID string) error {
	if err := s.store.DeleteQuestion(ctx, questionUUID); err != nil {
		return handleDBError(ctx, s.logger, "delete_question", err)
	}
	return nil
}

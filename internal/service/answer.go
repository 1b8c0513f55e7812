package service

import (
	"context"

	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/repository"
	"github.com/rs/zerolog"
)

type AnswerService struct {
	store  repository.AnswerStore
	logger *zerolog.Logger
}

func NewAnswerService(store repository.AnswerStore, logger *zerolog.Logger) *AnswerService {
	return &AnswerService{store: store, logger: logger}
}

func (s *AnswerService) CreateAnswer(ctx context.Context, answer model.Answer) (model.AnswerDetail, error) {
	detail, err := s.store.CreateAnswer(ctx, answer)
	if err != nil {
		return model.AnswerDetail{}, handleDBError(ctx, s.logger, "create_answer", err)
	}
	return detail, nil
}

func (s *AnswerService) GetAnswers(ctx context.Context, questionUUID string) ([]model.AnswerDetail, error) {
	answers, err := s.store.GetAnswers(ctx, questionUUID)
	if err != nil {
		return nil, handleDBError(ctx, s.logger, "get_answers", err)
	}
	return answers, nil
}

func (s *AnswerService) DeleteAnswer(ctx context.Context, answerUUID string) error {
	if err := s.store.DeleteAnswer(ctx, answerUUID); err != nil {
		return handleDBError(ctx, s.logger, "delete_answer", err)
	}
	return nil
}

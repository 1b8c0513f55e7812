package service

import (
	"github.com/deppfellow/go-qna/internal/repository"
	"github.com/deppfellow/go-qna/internal/server"
)

// Services groups every service the handlers depend on.
type Services struct {
	Questions *QuestionService
	Answers   *AnswerService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Questions: NewQuestionService(repos.Questions, s.Logger),
		Answers:   NewAnswerService(repos.Answers, s.Logger),
	}
}

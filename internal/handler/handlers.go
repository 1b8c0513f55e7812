package handler

import (
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/deppfellow/go-qna/internal/service"
)

type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Questions *QuestionHandler
	Answers   *AnswerHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Questions: NewQuestionHandler(s, services.Questions),
		Answers:   NewAnswerHandler(s, services.Answers),
	}
}

package handler

import (
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/deppfellow/go-qna/internal/service"
	"github.com/deppfellow/go-qna/internal/validation"
	"github.com/labstack/echo/v4"
)

type CreateQuestionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r *CreateQuestionRequest) Validate() error {
	return validation.Struct(r)
}

type GetQuestionsRequest struct{}

func (r *GetQuestionsRequest) Validate() error {
	return nil
}

type DeleteQuestionRequest struct {
	QuestionUUID string `param:"question_uuid" json:"question_uuid" validate:"required"`
}

func (r *DeleteQuestionRequest) Validate() error {
	return validation.Struct(r)
}

type QuestionHandler struct {
	Handler
	questions *service.QuestionService
}

func NewQuestionHandler(s *server.Server, questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		Handler:   NewHandler(s),
		questions: questions,
	}
}

func (h *QuestionHandler) CreateQuestion(c echo.Context, req *CreateQuestionRequest) (model.QuestionDetail, error) {
	return h.questions.CreateQuestion(c.Request().Context(), model.Question{
		Title:       req.Title,
		Description: req.Description,
	})
}

func (h *QuestionHandler) GetQuestions(c echo.Context, _ *GetQuestionsRequest) ([]model.QuestionDetail, error) {
	return h.questions.GetQuestions(c.Request().Context())
}

func (h *QuestionHandler) DeleteQuestion(c echo.Context, req *DeleteQuestionRequest) error {
	return h.questions.DeleteQuestion(c.Request().Context(), req.QuestionUUID)
}

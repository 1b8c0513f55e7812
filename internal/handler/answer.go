package handler

import (
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/deppfellow/go-qna/internal/service"
	"github.com/deppfellow/go-qna/internal/validation"
	"github.com/labstack/echo/v4"
)

type CreateAnswerRequest struct {
	QuestionUUID string `json:"question_uuid" validate:"required"`
	Content      string `json:"content" validate:"required"`
}

func (r *CreateAnswerRequest) Validate() error {
	return validation.Struct(r)
}

type GetAnswersRequest struct {
	QuestionUUID string `param:"question_uuid" json:"question_uuid" validate:"required"`
}

func (r *GetAnswersRequest) Validate() error {
	return validation.Struct(r)
}

type DeleteAnswerRequest struct {
	AnswerUUID string `param:"answer_uuid" json:"answer_uuid" validate:"required"`
}

func (r *DeleteAnswerRequest) Validate() error {
	return validation.Struct(r)
}

type AnswerHandler struct {
	Handler
	answers *service.AnswerService
}

func NewAnswerHandler(s *server.Server, answers *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		Handler: NewHandler(s),
		answers: answers,
	}
}

func (h *AnswerHandler) CreateAnswer(c echo.Context, req *CreateAnswerRequest) (model.AnswerDetail, error) {
	return h.answers.CreateAnswer(c.Request().Context(), model.Answer{
		QuestionUUID: req.QuestionUUID,
		Content:      req.Content,
	})
}

func (h *AnswerHandler) GetAnswers(c echo.Context, req *GetAnswersRequest) ([]model.AnswerDetail, error) {
	return h.answers.GetAnswers(c.Request().Context(), req.QuestionUUID)
}

func (h *AnswerHandler) DeleteAnswer(c echo.Context, req *DeleteAnswerRequest) error {
	return h.answers.DeleteAnswer(c.Request().Context(), req.AnswerUUID)
}

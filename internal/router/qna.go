package router

import (
	"net/http"

	"github.com/deppfellow/go-qna/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerQnARoutes(r *echo.Echo, h *handler.Handlers) {
	questions := h.Questions
	r.POST("/question", handler.Handle(questions.Handler, questions.CreateQuestion, http.StatusOK))
	r.GET("/questions", handler.Handle(questions.Handler, questions.GetQuestions, http.StatusOK))
	r.DELETE("/question/:question_uuid", handler.HandleNoContent(questions.Handler, questions.DeleteQuestion, http.StatusOK))

	answers := h.Answers
	r.POST("/answer", handler.Handle(answers.Handler, answers.CreateAnswer, http.StatusOK))
	r.GET("/answers/:question_uuid", handler.Handle(answers.Handler, answers.GetAnswers, http.StatusOK))
	r.DELETE("/answer/:answer_uuid", handler.HandleNoContent(answers.Handler, answers.DeleteAnswer, http.StatusOK))
}

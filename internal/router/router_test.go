package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/go-qna/internal/config"
	"github.com/deppfellow/go-qna/internal/database"
	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/handler"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/repository"
	"github.com/deppfellow/go-qna/internal/repository/mock"
	"github.com/deppfellow/go-qna/internal/server"
	"github.com/deppfellow/go-qna/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router    *echo.Echo
	questions *mock.QuestionStore
	answers   *mock.AnswerStore
}

func setupMockApp(t *testing.T) *testApp {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Observability = config.DefaultObservabilityConfig()
	logger := zerolog.Nop()

	s := server.NewWithDatabase(cfg, &logger, nil, nil)

	questions := mock.NewQuestionStore()
	answers := mock.NewAnswerStore()
	services := service.NewServices(s, &repository.Repositories{Questions: questions, Answers: answers})

	return &testApp{
		router:    NewRouter(s, handler.NewHandlers(s, services)),
		questions: questions,
		answers:   answers,
	}
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestQuestionRoutes(t *testing.T) {
	t.Run("create question returns 200 with the detail", func(t *testing.T) {
		app := setupMockApp(t)
		id := uuid.New()
		app.questions.MockCreateQuestion(model.QuestionDetail{
			QuestionUUID: id,
			Title:        "T",
			Description:  "D",
			CreatedAt:    time.Now(),
		}, nil)

		rec := app.do(http.MethodPost, "/question", `{"title":"T","description":"D"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var got model.QuestionDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, id, got.QuestionUUID)
		assert.Equal(t, "T", got.Title)
		assert.False(t, app.questions.Pending())
	})

	t.Run("missing title is 400 without a storage call", func(t *testing.T) {
		app := setupMockApp(t)

		rec := app.do(http.MethodPost, "/question", `{"description":"D"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "title", body.Errors[0].Field)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		app := setupMockApp(t)

		rec := app.do(http.MethodPost, "/question", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list storage failure is 500 with the generic message", func(t *testing.T) {
		app := setupMockApp(t)
		app.questions.MockGetQuestions(nil, errs.NewOtherError(errors.New(`relation "questions" does not exist`)))

		rec := app.do(http.MethodGet, "/questions", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, errs.DefaultInternalErrorMessage, body.Message)
		assert.NotContains(t, rec.Body.String(), "relation")
	})

	t.Run("delete with invalid uuid is 400 with the detail", func(t *testing.T) {
		app := setupMockApp(t)
		app.questions.MockDeleteQuestion(errs.NewInvalidUUIDError("invalid UUID length: 3"))

		rec := app.do(http.MethodDelete, "/question/abc", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid UUID length: 3", decodeError(t, rec).Message)
	})

	t.Run("delete success is 200 with empty body", func(t *testing.T) {
		app := setupMockApp(t)
		app.questions.MockDeleteQuestion(nil)

		rec := app.do(http.MethodDelete, "/question/"+uuid.NewString(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestAnswerRoutes(t *testing.T) {
	t.Run("create answer for missing question is 400", func(t *testing.T) {
		app := setupMockApp(t)
		missing := uuid.NewString()
		app.answers.MockCreateAnswer(model.AnswerDetail{}, errs.NewMissingQuestionError(missing))

		rec := app.do(http.MethodPost, "/answer", `{"question_uuid":"`+missing+`","content":"A"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, missing)
	})

	t.Run("missing content is 400", func(t *testing.T) {
		app := setupMockApp(t)

		rec := app.do(http.MethodPost, "/answer", `{"question_uuid":"`+uuid.NewString()+`"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, app.answers.Pending())
	})

	t.Run("list answers returns 200 with a json array", func(t *testing.T) {
		app := setupMockApp(t)
		app.answers.MockGetAnswers([]model.AnswerDetail{}, nil)

		rec := app.do(http.MethodGet, "/answers/"+uuid.NewString(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("list answers storage failure is 500", func(t *testing.T) {
		app := setupMockApp(t)
		app.answers.MockGetAnswers(nil, errs.NewOtherError(errors.New("timeout")))

		rec := app.do(http.MethodGet, "/answers/"+uuid.NewString(), "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, errs.DefaultInternalErrorMessage, decodeError(t, rec).Message)
	})

	t.Run("delete answer success is 200", func(t *testing.T) {
		app := setupMockApp(t)
		app.answers.MockDeleteAnswer(nil)

		rec := app.do(http.MethodDelete, "/answer/"+uuid.NewString(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSystemRoutes(t *testing.T) {
	t.Run("unknown route is 404", func(t *testing.T) {
		app := setupMockApp(t)

		rec := app.do(http.MethodGet, "/nope", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Route not found", decodeError(t, rec).Message)
	})

	t.Run("status without a database is 503", func(t *testing.T) {
		app := setupMockApp(t)

		rec := app.do(http.MethodGet, "/status", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("request id is echoed", func(t *testing.T) {
		app := setupMockApp(t)
		app.questions.MockGetQuestions([]model.QuestionDetail{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/questions", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("cors preflight is allowed", func(t *testing.T) {
		app := setupMockApp(t)

		req := httptest.NewRequest(http.MethodOptions, "/question", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestEndToEndWithSQLite(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Observability = config.DefaultObservabilityConfig()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "qna.db")
	logger := zerolog.Nop()

	db, err := database.New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := server.NewWithDatabase(cfg, &logger, nil, db)
	repos, err := repository.NewRepositories(s)
	require.NoError(t, err)

	app := &testApp{router: NewRouter(s, handler.NewHandlers(s, service.NewServices(s, repos)))}

	rec := app.do(http.MethodPost, "/question", `{"title":"T","description":"D"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var question model.QuestionDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &question))

	rec = app.do(http.MethodPost, "/answer", `{"question_uuid":"`+question.QuestionUUID.String()+`","content":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var answer model.AnswerDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.Equal(t, question.QuestionUUID, answer.QuestionUUID)

	rec = app.do(http.MethodGet, "/answers/"+question.QuestionUUID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var answers []model.AnswerDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answers))
	require.Len(t, answers, 1)
	assert.Equal(t, answer.AnswerUUID, answers[0].AnswerUUID)

	rec = app.do(http.MethodPost, "/answer", `{"question_uuid":"`+uuid.NewString()+`","content":"orphan"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodDelete, "/answer/"+answer.AnswerUUID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodDelete, "/question/"+question.QuestionUUID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodGet, "/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = app.do(http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

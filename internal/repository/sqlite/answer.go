package sqlite

import (
	"context"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/deppfellow/go-qna/internal/sqlerr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerStore struct {
	db *gorm.DB
}

func NewAnswerStore(db *gorm.DB) *AnswerStore {
	return &AnswerStore{db: db}
}

// CreateAnswer inserts answer. A question_uuid that references no question is
// reported as InvalidUUID naming the caller's id, not the driver message.
func (s *AnswerStore) CreateAnswer(ctx context.Context, answer model.Answer) (model.AnswerDetail, error) {
	questionID, err := uuid.Parse(answer.QuestionUUID)
	if err != nil {
		return model.AnswerDetail{}, errs.NewInvalidUUIDError(err.Error())
	}

	rec := answerRecord{
		QuestionUUID: questionID,
		Content:      answer.Content,
	}

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if sqlerr.IsForeignKeyViolation(err) {
			return model.AnswerDetail{}, errs.NewMissingQuestionError(answer.QuestionUUID)
		}
		return model.AnswerDetail{}, errs.NewOtherError(err)
	}

	return rec.toDetail(), nil
}

func (s *AnswerStore) GetAnswers(ctx context.Context, questionUUID string) ([]model.AnswerDetail, error) {
	questionID, err := uuid.Parse(questionUUID)
	if err != nil {
		return nil, errs.NewInvalidUUIDError(err.Error())
	}

	var recs []answerRecord
	err = s.db.WithContext(ctx).
		Where("question_uuid = ?", questionID).
		Find(&recs).Error
	if err != nil {
		return nil, errs.NewOtherError(err)
	}

	answers := make([]model.AnswerDetail, 0, len(recs))
	for _, rec := range recs {
		answers = append(answers, rec.toDetail())
	}
	return answers, nil
}

func (s *AnswerStore) DeleteAnswer(ctx context.Context, answerUUID string) error {
	id, err := uuid.Parse(answerUUID)
	if err != nil {
		return errs.NewInvalidUUIDError(err.Error())
	}

	err = s.db.WithContext(ctx).
		Where("answer_uuid = ?", id).
		Delete(&answerRecord{}).Error
	if err != nil {
		return errs.NewOtherError(err)
	}

	return nil
}

func (a answerRecord) toDetail() model.AnswerDetail {
	return model.AnswerDetail{
		AnswerUUID:   a.AnswerUUID,
		QuestionUUID: a.QuestionUUID,
		Content:      a.Content,
		CreatedAt:    a.CreatedAt,
	}
}

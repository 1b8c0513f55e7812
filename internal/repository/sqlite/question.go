package sqlite

import (
	"context"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/deppfellow/go-qna/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionStore struct {
	db *gorm.DB
}

func NewQuestionStore(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

func (s *QuestionStore) CreateQuestion(ctx context.Context, question model.Question) (model.QuestionDetail, error) {
	rec := questionRecord{
		Title:       question.Title,
		Description: question.Description,
	}

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return model.QuestionDetail{}, errs.NewOtherError(err)
	}

	return rec.toDetail(), nil
}

func (s *QuestionStore) GetQuestions(ctx context.Context) ([]model.QuestionDetail, error) {
	var recs []questionRecord
	if err := s.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, errs.NewOtherError(err)
	}

	questions := make([]model.QuestionDetail, 0, len(recs))
	for _, rec := range recs {
		questions = append(questions, rec.toDetail())
	}
	return questions, nil
}

func (s *QuestionStore) DeleteQuestion(ctx context.Context, questionUUID string) error {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return errs.NewInvalidUUIDError(err.Error())
	}

	err = s.db.WithContext(ctx).
		Where("question_uuid = ?", id).
		Delete(&questionRecord{}).Error
	if err != nil {
		return errs.NewOtherError(err)
	}

	return nil
}

func (q questionRecord) toDetail() model.QuestionDetail {
	return model.QuestionDetail{
		QuestionUUID: q.QuestionUUID,
		Title:        q.Title,
		Description:  q.Description,
		CreatedAt:    q.CreatedAt,
	}
}

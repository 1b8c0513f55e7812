// Package sqlite implements the question and answer stores on top of gorm and
// an embedded sqlite database.
//
// Identifiers and creation timestamps are assigned in process when a row is
// inserted. Foreign keys are enforced only when the connection enables them;
// see config.DatabaseConfig.SQLiteDSN.
package sqlite

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type questionRecord struct {
	QuestionUUID uuid.UUID `gorm:"column:question_uuid;type:text;primaryKey"`
	Title        string    `gorm:"column:title;not null"`
	Description  string    `gorm:"column:description;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`

	// Answers puts the foreign key on answers.question_uuid. It is never
	// preloaded and is empty on every insert.
	Answers []answerRecord `gorm:"foreignKey:QuestionUUID;references:QuestionUUID"`
}

func (questionRecord) TableName() string { return "questions" }

func (q *questionRecord) BeforeCreate(*gorm.DB) error {
	if q.QuestionUUID == uuid.Nil {
		q.QuestionUUID = uuid.New()
	}
	return nil
}

type answerRecord struct {
	AnswerUUID   uuid.UUID `gorm:"column:answer_uuid;type:text;primaryKey"`
	QuestionUUID uuid.UUID `gorm:"column:question_uuid;type:text;not null;index"`
	Content      string    `gorm:"column:content;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (answerRecord) TableName() string { return "answers" }

func (a *answerRecord) BeforeCreate(*gorm.DB) error {
	if a.AnswerUUID == uuid.Nil {
		a.AnswerUUID = uuid.New()
	}
	return nil
}

// Models lists the records AutoMigrate must create, parents first.
func Models() []any {
	return []any{&questionRecord{}, &answerRecord{}}
}

// AutoMigrate creates or updates the questions and answers tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

package repository

import (
	"fmt"

	"github.com/deppfellow/go-qna/internal/config"
	"github.com/deppfellow/go-qna/internal/repository/sqlite"
	"github.com/deppfellow/go-qna/internal/server"
)

// Repositories holds the stores for the configured driver.
type Repositories struct {
	Questions QuestionStore
	Answers   AnswerStore
}

// NewRepositories picks the stores matching s.DB.Driver.
func NewRepositories(s *server.Server) (*Repositories, error) {
	switch s.DB.Driver {
	case config.DriverPostgres:
		return &Repositories{
			Questions: NewQuestionRepository(s.DB.Pool),
			Answers:   NewAnswerRepository(s.DB.Pool),
		}, nil
	case config.DriverSQLite:
		return &Repositories{
			Questions: sqlite.NewQuestionStore(s.DB.Gorm),
			Answers:   sqlite.NewAnswerStore(s.DB.Gorm),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", s.DB.Driver)
	}
}

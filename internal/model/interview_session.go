package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Question is one generated multiple-choice question, embedded in the session
// row. CorrectOption and Explanation are never sent to the client before the
// question is answered.
type Question struct {
	QID           string            `json:"qId"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectOption string            `json:"correctOption"`
	Explanation   string            `json:"explanation"`
}

// Answer records the option a user picked for one question.
type Answer struct {
	QID            string `json:"qId"`
	SelectedOption string `json:"selectedOption"`
	Correct        bool   `json:"correct"`
}

type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Question{})
	}
	return json.Marshal(l)
}

func (l *QuestionList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type AnswerList []Answer

func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Answer{})
	}
	return json.Marshal(l)
}

func (l *AnswerList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported type %T for jsonb column", value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, dest)
}

// InterviewSession is the whole interview attempt persisted as a single row;
// questions and answers live in jsonb columns, so a save overwrites the full
// document. Concurrent writers against the same session race last-write-wins.
type InterviewSession struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ClerkID        string       `gorm:"not null;index" json:"clerkId"`
	Skill          string       `gorm:"not null" json:"skill"`
	TotalQuestions int          `gorm:"default:5" json:"totalQuestions"`
	Questions      QuestionList `gorm:"type:jsonb" json:"questions"`
	Answers        AnswerList   `gorm:"type:jsonb" json:"answers"`
	CurrentIndex   int          `gorm:"default:0" json:"currentIndex"`
	Score          int          `gorm:"default:0" json:"score"`
	Finished       bool         `gorm:"default:false" json:"finished"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// QuestionByID linear-scans the embedded questions. Sessions hold at most a
// few dozen entries, so no index is kept.
func (s *InterviewSession) QuestionByID(qID string) *Question {
	for i := range s.Questions {
		if s.Questions[i].QID == qID {
			return &s.Questions[i]
		}
	}
	return nil
}

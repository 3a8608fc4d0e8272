package model

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Quiz is the single quiz of a course, keyed by the course id. Options and
// Answers are stored as JSON arrays; Answers holds indices into Options.
type Quiz struct {
	gorm.Model
	ID       string `gorm:"primaryKey;uuid;not null;"`
	CourseID string `gorm:"uuid;not null;uniqueIndex:idx_quizzes_course_id"`
	Question string `gorm:"not null"`
	Options  string `gorm:"not null"`
	Answers  string `gorm:"not null"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

func (q *Quiz) OptionList() ([]string, error) {
	options := make([]string, 0)
	if q.Options == "" {
		return options, nil
	}
	err := json.Unmarshal([]byte(q.Options), &options)
	return options, err
}

func (q *Quiz) AnswerList() ([]int, error) {
	answers := make([]int, 0)
	if q.Answers == "" {
		return answers, nil
	}
	err := json.Unmarshal([]byte(q.Answers), &answers)
	return answers, err
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Result struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"index"`
	QuizID uint `json:"quiz_id" gorm:"index"`

	Score          float64   `json:"score"` // percentage, 0-100
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	AttemptedOn    time.Time `json:"attempted_on"`
}

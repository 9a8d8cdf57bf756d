package models

import (
	"time"

	"gorm.io/gorm"
)

type Score struct {
	gorm.Model
	QuizID uint `json:"quiz_id" gorm:"index"`
	UserID uint `json:"user_id" gorm:"index"`

	TimestampOfAttempt time.Time `json:"timestamp_of_attempt"`
	Correct            int       `json:"correct"`
	Wrong              int       `json:"wrong"`
	Unattempted        int       `json:"unattempted"`
	TotalScore         int       `json:"total_score"`
	Status             string    `json:"status"`

	User User `json:"-"`
	Quiz Quiz `json:"-"`
}

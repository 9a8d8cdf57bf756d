package models

import "gorm.io/gorm"

// UserResponse records one submitted answer. OptionSelected is -1 when the
// question was left unattempted.
type UserResponse struct {
	gorm.Model
	UserID     uint `json:"user_id" gorm:"index"`
	QuizID     uint `json:"quiz_id" gorm:"index"`
	QuestionID uint `json:"question_id" gorm:"index"`

	OptionSelected int `json:"option_selected"`
}

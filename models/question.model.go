package models

import "gorm.io/gorm"

// Question holds four fixed option slots; CorrectOptionID is the 1-based
// index of the correct slot.
type Question struct {
	gorm.Model
	QuizID uint `json:"quiz_id" gorm:"index"`

	QuestionStatement  string `json:"question_statement" gorm:"type:text"`
	QuestionSearchTerm string `json:"-" gorm:"type:text"`

	Option1         string `json:"option1"`
	Option2         string `json:"option2"`
	Option3         string `json:"option3"`
	Option4         string `json:"option4"`
	CorrectOptionID int    `json:"correct_option_id"`

	Responses []UserResponse `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

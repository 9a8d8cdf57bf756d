package models

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	gorm.Model
	ChapterID             uint   `json:"chapterid" gorm:"index"`
	ChapterNameSearchTerm string `json:"-"`
	SubjectID             uint   `json:"subjectid" gorm:"index"`
	SubjectNameSearchTerm string `json:"-"`

	DateOfQuiz     time.Time `json:"date_of_quiz"`
	DurationOfQuiz int       `json:"duration_of_quiz"` // duration in minutes
	Remarks        string    `json:"remarks" gorm:"type:text;default:''"`

	Questions []Question     `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Responses []UserResponse `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Scores    []Score        `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Results   []Result       `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

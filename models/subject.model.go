package models

import "gorm.io/gorm"

type Subject struct {
	gorm.Model
	Name           string `json:"name"`
	NameSearchTerm string `json:"-"`
	Description    string `json:"description" gorm:"type:text;default:''"`

	Chapters []Chapter `json:"-" gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
	Quizzes  []Quiz    `json:"-" gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
}

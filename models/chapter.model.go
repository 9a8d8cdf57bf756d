package models

import "gorm.io/gorm"

type Chapter struct {
	gorm.Model
	Name           string `json:"name"`
	NameSearchTerm string `json:"-"`
	Description    string `json:"description" gorm:"type:text"`
	SubjectID      uint   `json:"subjectid" gorm:"index"`

	Quizzes []Quiz `json:"-" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}

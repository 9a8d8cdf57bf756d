package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string     `json:"email" gorm:"unique;not null"`
	Password       string     `json:"-" gorm:"not null"`
	FsUniquifier   string     `json:"-" gorm:"unique"`
	Active         bool       `json:"active" gorm:"default:true"`
	FullName       string     `json:"fullname"`
	NameSearchTerm string     `json:"-"`
	DOB            *time.Time `json:"dob"`
	Gender         string     `json:"gender"`
	Country        string     `json:"country"`
	Qualification  string     `json:"qualification"`

	Roles            []Role    `json:"roles" gorm:"many2many:user_roles"`
	SavedQuizzes     []Quiz    `json:"-" gorm:"many2many:saved_quizzes"`
	EnrolledSubjects []Subject `json:"-" gorm:"many2many:enrolled_subjects"`

	Responses []UserResponse `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Scores    []Score        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Results   []Result       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	GroupID   uint           `json:"groupId" gorm:"not null;index"`
	Group     Group          `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	CreatedBy uint           `json:"createdBy" gorm:"not null;index"`
	User      User           `json:"user,omitempty" gorm:"foreignKey:CreatedBy"`
	Answers   []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

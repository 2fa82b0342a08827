package model

import (
	"time"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	CreatedBy   uint           `json:"createdBy" gorm:"not null;index"`
	User        User           `json:"user,omitempty" gorm:"foreignKey:CreatedBy"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:GroupID"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

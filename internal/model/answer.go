package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer requires text or an audio URL; the service layer enforces that at
// least one is present. Answers are immutable once posted.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Text       *string        `json:"text" gorm:"type:text"`
	AudioURL   *string        `json:"audioUrl"`
	QuestionID uint           `json:"questionId" gorm:"not null;index"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedBy  uint           `json:"createdBy" gorm:"not null;index"`
	User       User           `json:"user,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

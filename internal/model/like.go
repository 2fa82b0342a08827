package model

import "time"

const (
	LikeTypeQuestion = "QUESTION"
	LikeTypeAnswer   = "ANSWER"
)

// Like is the engagement ledger: one row per (type, refId, userId). Counts
// are always derived by counting rows, never stored on the content itself.
//
// Likes are hard-deleted: a soft-deleted row would keep holding the unique
// key and block re-liking, so there is no DeletedAt here.
type Like struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Type      string    `json:"type" gorm:"not null;uniqueIndex:uk_likes_type_ref_user,priority:1"`
	RefID     uint      `json:"refId" gorm:"not null;uniqueIndex:uk_likes_type_ref_user,priority:2"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:uk_likes_type_ref_user,priority:3"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidLikeType reports whether t names a likeable content space.
func ValidLikeType(t string) bool {
	return t == LikeTypeQuestion || t == LikeTypeAnswer
}

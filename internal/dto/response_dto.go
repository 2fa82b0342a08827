package dto

import "time"

// UserSummary is the creator projection embedded in content responses.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GroupSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type GroupCount struct {
	Questions int64 `json:"questions"`
}

type GroupResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	CreatedBy   uint        `json:"createdBy"`
	User        UserSummary `json:"user"`
	Count       GroupCount  `json:"_count"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// QuestionCount carries the derived engagement numbers. Both are computed at
// read time from the answer table and the like ledger, never stored.
type QuestionCount struct {
	Answers int64 `json:"answers"`
	Likes   int64 `json:"likes"`
}

type QuestionResponse struct {
	ID        uint          `json:"id"`
	Text      string        `json:"text"`
	GroupID   uint          `json:"groupId"`
	CreatedBy uint          `json:"createdBy"`
	User      UserSummary   `json:"user"`
	Group     GroupSummary  `json:"group"`
	Count     QuestionCount `json:"_count"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type AnswerCount struct {
	Likes int64 `json:"likes"`
}

type AnswerResponse struct {
	ID         uint        `json:"id"`
	Text       *string     `json:"text"`
	AudioURL   *string     `json:"audioUrl"`
	QuestionID uint        `json:"questionId"`
	CreatedBy  uint        `json:"createdBy"`
	User       UserSummary `json:"user"`
	Count      AnswerCount `json:"_count"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// QuestionDetailResponse is the full thread view: the question plus all its
// answers newest-first, each with its own like count.
type QuestionDetailResponse struct {
	QuestionResponse
	Answers []AnswerResponse `json:"answers"`
}

type LikeStatusResponse struct {
	Liked bool `json:"liked"`
}

type TokenResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type UploadAudioResponse struct {
	AudioURL string `json:"audioUrl"`
	PublicID string `json:"publicId"`
	Message  string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

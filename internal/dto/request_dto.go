package dto

// TokenRequest exchanges an identity assertion for a session token.
// Only emails on the allow-listed domain are accepted.
type TokenRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateGroupRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateQuestionRequest struct {
	Text    string `json:"text" binding:"required"`
	GroupID uint   `json:"groupId" binding:"required"`
}

type UpdateQuestionRequest struct {
	ID   uint   `json:"id" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// CreateAnswerRequest needs text or an audio URL; the service rejects
// submissions carrying neither.
type CreateAnswerRequest struct {
	Text       string `json:"text"`
	AudioURL   string `json:"audioUrl"`
	QuestionID uint   `json:"questionId" binding:"required"`
}

type ToggleLikeRequest struct {
	Type  string `json:"type" binding:"required,oneof=QUESTION ANSWER"`
	RefID uint   `json:"refId" binding:"required"`
}

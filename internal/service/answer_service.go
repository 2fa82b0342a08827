package service

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
)

// AnswerService only creates. Answers are immutable once posted; no update
// or delete operation exists.
type AnswerService interface {
	CreateAnswer(userID uint, req dto.CreateAnswerRequest) (*dto.AnswerResponse, error)
}

type answerService struct {
	answerRepo repository.AnswerRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository) AnswerService {
	return &answerService{answerRepo: answerRepo}
}

func (s *answerService) CreateAnswer(userID uint, req dto.CreateAnswerRequest) (*dto.AnswerResponse, error) {
	text := strings.TrimSpace(req.Text)
	audioURL := strings.TrimSpace(req.AudioURL)
	if text == "" && audioURL == "" {
		return nil, NewValidationError("Answer text or audio URL is required")
	}
	if req.QuestionID == 0 {
		return nil, NewValidationError("Question ID is required")
	}

	answer := model.Answer{QuestionID: req.QuestionID, CreatedBy: userID}
	if text != "" {
		answer.Text = &text
	}
	if audioURL != "" {
		answer.AudioURL = &audioURL
	}

	if err := s.answerRepo.Create(&answer); err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("Failed to create answer")
		return nil, fmt.Errorf("error creating answer: %w", err)
	}

	created, err := s.answerRepo.FindByID(answer.ID)
	if err != nil {
		return nil, fmt.Errorf("error reloading answer: %w", err)
	}
	resp := toAnswerResponse(created, 0)
	return &resp, nil
}

func toAnswerResponse(a *model.Answer, likeCount int64) dto.AnswerResponse {
	var resp dto.AnswerResponse
	copier.Copy(&resp, a)
	resp.Count = dto.AnswerCount{Likes: likeCount}
	return resp
}

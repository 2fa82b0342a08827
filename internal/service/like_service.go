package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
)

// LikeService fronts the engagement ledger. Toggle is the only mutation:
// calling it twice returns the pair to its original state.
type LikeService interface {
	CheckLiked(likeType string, refID, userID uint) (*dto.LikeStatusResponse, error)
	ToggleLike(likeType string, refID, userID uint) (*dto.LikeStatusResponse, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

func (s *likeService) CheckLiked(likeType string, refID, userID uint) (*dto.LikeStatusResponse, error) {
	if !model.ValidLikeType(likeType) || refID == 0 {
		return nil, NewValidationError("Type and refId are required")
	}
	liked, err := s.likeRepo.Exists(likeType, refID, userID)
	if err != nil {
		log.Error().Err(err).Str("type", likeType).Uint("refID", refID).Msg("Failed to check like")
		return nil, fmt.Errorf("error checking like: %w", err)
	}
	return &dto.LikeStatusResponse{Liked: liked}, nil
}

func (s *likeService) ToggleLike(likeType string, refID, userID uint) (*dto.LikeStatusResponse, error) {
	if !model.ValidLikeType(likeType) || refID == 0 {
		return nil, NewValidationError("Type and refId are required")
	}
	liked, err := s.likeRepo.Toggle(likeType, refID, userID)
	if err != nil {
		log.Error().Err(err).Str("type", likeType).Uint("refID", refID).Msg("Failed to toggle like")
		return nil, fmt.Errorf("error toggling like: %w", err)
	}
	return &dto.LikeStatusResponse{Liked: liked}, nil
}

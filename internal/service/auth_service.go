package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/auth"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
)

// AuthService is the session boundary: it gates access to the allow-listed
// email domain, provisions the User row, and issues the bearer token every
// content operation requires.
type AuthService interface {
	IssueToken(req dto.TokenRequest) (*dto.TokenResponse, error)
	GetUser(userID uint) (*dto.UserSummary, error)
}

type authService struct {
	userRepo      repository.UserRepository
	tokenManager  *auth.TokenManager
	allowedDomain string
}

func NewAuthService(userRepo repository.UserRepository, tokenManager *auth.TokenManager, cfg *config.Config) AuthService {
	return &authService{
		userRepo:      userRepo,
		tokenManager:  tokenManager,
		allowedDomain: strings.ToLower(strings.TrimPrefix(cfg.Auth.AllowedEmailDomain, "@")),
	}
}

func (s *authService) IssueToken(req dto.TokenRequest) (*dto.TokenResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, NewValidationError("Name and email are required")
	}

	if s.allowedDomain != "" && !strings.HasSuffix(email, "@"+s.allowedDomain) {
		log.Warn().Str("email", email).Msg("Rejected session request from outside allowed domain")
		return nil, ErrEmailDomainNotAllowed
	}

	user := model.User{Name: name, Email: email}
	if err := s.userRepo.UpsertByEmail(&user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to provision user")
		return nil, fmt.Errorf("error provisioning user: %w", err)
	}

	token, err := s.tokenManager.Generate(&user)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign token")
		return nil, fmt.Errorf("error signing token: %w", err)
	}

	return &dto.TokenResponse{
		Token: token,
		User:  dto.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

func (s *authService) GetUser(userID uint) (*dto.UserSummary, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	summary := toUserSummary(user)
	return &summary, nil
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
)

type GroupService interface {
	ListGroups() ([]dto.GroupResponse, error)
	CreateGroup(userID uint, req dto.CreateGroupRequest) (*dto.GroupResponse, error)
	UpdateGroup(userID uint, req dto.UpdateGroupRequest) (*dto.GroupResponse, error)
	DeleteGroup(userID, id uint) error
}

type groupService struct {
	groupRepo    repository.GroupRepository
	questionRepo repository.QuestionRepository
}

func NewGroupService(groupRepo repository.GroupRepository, questionRepo repository.QuestionRepository) GroupService {
	return &groupService{groupRepo: groupRepo, questionRepo: questionRepo}
}

func (s *groupService) ListGroups() ([]dto.GroupResponse, error) {
	groups, err := s.groupRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list groups")
		return nil, fmt.Errorf("error fetching groups: %w", err)
	}

	ids := make([]uint, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	counts, err := s.questionRepo.CountByGroupIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("error counting questions: %w", err)
	}

	resp := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		resp = append(resp, toGroupResponse(&groups[i], counts[groups[i].ID]))
	}
	return resp, nil
}

func (s *groupService) CreateGroup(userID uint, req dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("Group name is required")
	}

	group := model.Group{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   userID,
	}
	if err := s.groupRepo.Create(&group); err != nil {
		log.Error().Err(err).Msg("Failed to create group")
		return nil, fmt.Errorf("error creating group: %w", err)
	}

	return s.loadGroupResponse(group.ID)
}

func (s *groupService) UpdateGroup(userID uint, req dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("Group name is required")
	}

	err := s.groupRepo.UpdateOwned(req.ID, userID, name, strings.TrimSpace(req.Description))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Uint("groupID", req.ID).Msg("Failed to update group")
		return nil, fmt.Errorf("error updating group: %w", err)
	}

	return s.loadGroupResponse(req.ID)
}

func (s *groupService) DeleteGroup(userID, id uint) error {
	err := s.groupRepo.DeleteOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Uint("groupID", id).Msg("Failed to delete group")
		return fmt.Errorf("error deleting group: %w", err)
	}
	return nil
}

func (s *groupService) loadGroupResponse(id uint) (*dto.GroupResponse, error) {
	group, err := s.groupRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("error reloading group: %w", err)
	}
	counts, err := s.questionRepo.CountByGroupIDs([]uint{id})
	if err != nil {
		return nil, fmt.Errorf("error counting questions: %w", err)
	}
	resp := toGroupResponse(group, counts[id])
	return &resp, nil
}

func toGroupResponse(group *model.Group, questionCount int64) dto.GroupResponse {
	var resp dto.GroupResponse
	copier.Copy(&resp, group)
	resp.Count = dto.GroupCount{Questions: questionCount}
	return resp
}

func toUserSummary(user *model.User) dto.UserSummary {
	return dto.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}

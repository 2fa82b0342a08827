package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
)

const (
	SortRecent     = "recent"
	SortPopular    = "popular"
	SortUnanswered = "unanswered"
)

type QuestionService interface {
	ListQuestions(groupID *uint, query, sortBy string) ([]dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionDetailResponse, error)
	CreateQuestion(userID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(userID uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(userID, id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	likeRepo     repository.LikeRepository
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	likeRepo repository.LikeRepository,
) QuestionService {
	return &questionService{questionRepo: questionRepo, answerRepo: answerRepo, likeRepo: likeRepo}
}

func (s *questionService) ListQuestions(groupID *uint, query, sortBy string) ([]dto.QuestionResponse, error) {
	filter := repository.QuestionFilter{
		GroupID:    groupID,
		Query:      query,
		Unanswered: sortBy == SortUnanswered,
	}
	questions, err := s.questionRepo.Search(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to search questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	likeCounts, err := s.likeRepo.CountByRefIDs(model.LikeTypeQuestion, ids)
	if err != nil {
		return nil, fmt.Errorf("error counting likes: %w", err)
	}
	answerCounts, err := s.answerRepo.CountByQuestionIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("error counting answers: %w", err)
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		resp = append(resp, toQuestionResponse(q, likeCounts[q.ID], answerCounts[q.ID]))
	}

	// Popularity is derived from the ledger, so it is applied here after
	// retrieval rather than pushed into the store's ORDER BY.
	if sortBy == SortPopular {
		sort.SliceStable(resp, func(i, j int) bool {
			return resp[i].Count.Likes > resp[j].Count.Likes
		})
	}
	return resp, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionDetailResponse, error) {
	question, err := s.questionRepo.FindByIDWithAnswers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to get question")
		return nil, fmt.Errorf("error fetching question: %w", err)
	}

	likeCount, err := s.likeRepo.CountByRef(model.LikeTypeQuestion, id)
	if err != nil {
		return nil, fmt.Errorf("error counting likes: %w", err)
	}

	answerIDs := make([]uint, 0, len(question.Answers))
	for _, a := range question.Answers {
		answerIDs = append(answerIDs, a.ID)
	}
	answerLikeCounts, err := s.likeRepo.CountByRefIDs(model.LikeTypeAnswer, answerIDs)
	if err != nil {
		return nil, fmt.Errorf("error counting answer likes: %w", err)
	}

	detail := dto.QuestionDetailResponse{
		QuestionResponse: toQuestionResponse(question, likeCount, int64(len(question.Answers))),
		Answers:          make([]dto.AnswerResponse, 0, len(question.Answers)),
	}
	for i := range question.Answers {
		a := &question.Answers[i]
		detail.Answers = append(detail.Answers, toAnswerResponse(a, answerLikeCounts[a.ID]))
	}
	return &detail, nil
}

func (s *questionService) CreateQuestion(userID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, NewValidationError("Question text is required")
	}
	if req.GroupID == 0 {
		return nil, NewValidationError("Group ID is required")
	}

	question := model.Question{Text: text, GroupID: req.GroupID, CreatedBy: userID}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("error creating question: %w", err)
	}

	return s.loadQuestionResponse(question.ID)
}

func (s *questionService) UpdateQuestion(userID uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, NewValidationError("Question text is required")
	}

	err := s.questionRepo.UpdateOwned(req.ID, userID, text)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Uint("questionID", req.ID).Msg("Failed to update question")
		return nil, fmt.Errorf("error updating question: %w", err)
	}

	return s.loadQuestionResponse(req.ID)
}

func (s *questionService) DeleteQuestion(userID, id uint) error {
	err := s.questionRepo.DeleteOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return fmt.Errorf("error deleting question: %w", err)
	}
	return nil
}

func (s *questionService) loadQuestionResponse(id uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("error reloading question: %w", err)
	}
	likeCount, err := s.likeRepo.CountByRef(model.LikeTypeQuestion, id)
	if err != nil {
		return nil, fmt.Errorf("error counting likes: %w", err)
	}
	answerCounts, err := s.answerRepo.CountByQuestionIDs([]uint{id})
	if err != nil {
		return nil, fmt.Errorf("error counting answers: %w", err)
	}
	resp := toQuestionResponse(question, likeCount, answerCounts[id])
	return &resp, nil
}

func toQuestionResponse(q *model.Question, likeCount, answerCount int64) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, q)
	resp.Count = dto.QuestionCount{Answers: answerCount, Likes: likeCount}
	return resp
}

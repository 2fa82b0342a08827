package repository

import (
	"gorm.io/gorm"

	"github.com/lshigami/Quokka/internal/model"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindByID(id uint) (*model.Answer, error)
	CountByQuestionIDs(questionIDs []uint) (map[uint]int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.Preload("User").First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) CountByQuestionIDs(questionIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(questionIDs))
	if len(questionIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		QuestionID uint
		Total      int64
	}
	err := r.db.Model(&model.Answer{}).
		Select("question_id, COUNT(*) AS total").
		Where("question_id IN ?", questionIDs).
		Group("question_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.QuestionID] = row.Total
	}
	return counts, nil
}

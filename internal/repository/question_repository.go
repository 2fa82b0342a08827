package repository

import (
	"database/sql"
	"strings"

	"gorm.io/gorm"

	"github.com/lshigami/Quokka/internal/model"
)

// QuestionFilter is the listing filter. Query matches case-insensitively
// against the question text, the asking user's name, any answer's text, or
// any answer author's name. Unanswered restricts to questions with zero
// answers; it combines with GroupID via AND.
type QuestionFilter struct {
	GroupID    *uint
	Query      string
	Unanswered bool
}

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithAnswers(id uint) (*model.Question, error)
	Search(filter QuestionFilter) ([]model.Question, error)
	CountByGroupIDs(groupIDs []uint) (map[uint]int64, error)
	UpdateOwned(id, userID uint, text string) error
	DeleteOwned(id, userID uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("User").Preload("Group").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithAnswers(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("User").Preload("Group").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.created_at DESC")
		}).
		Preload("Answers.User").
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Search(filter QuestionFilter) ([]model.Question, error) {
	db := r.db.Model(&model.Question{}).
		Preload("User").Preload("Group").
		Order("questions.created_at DESC")

	if filter.GroupID != nil {
		db = db.Where("questions.group_id = ?", *filter.GroupID)
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		// The term matches anywhere in the thread: question text, question
		// author name, answer text, or answer author name.
		db = db.Where(`(
			LOWER(questions.text) LIKE @q
			OR EXISTS (
				SELECT 1 FROM users u
				WHERE u.id = questions.created_by AND u.deleted_at IS NULL AND LOWER(u.name) LIKE @q
			)
			OR EXISTS (
				SELECT 1 FROM answers a
				LEFT JOIN users au ON au.id = a.created_by AND au.deleted_at IS NULL
				WHERE a.question_id = questions.id AND a.deleted_at IS NULL
				AND (LOWER(a.text) LIKE @q OR LOWER(au.name) LIKE @q)
			))`, sql.Named("q", pattern))
	}

	if filter.Unanswered {
		db = db.Where("NOT EXISTS (SELECT 1 FROM answers a WHERE a.question_id = questions.id AND a.deleted_at IS NULL)")
	}

	var questions []model.Question
	if err := db.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// CountByGroupIDs aggregates question counts for a set of groups in one
// grouped query. Groups with no questions are simply absent from the map.
func (r *questionRepository) CountByGroupIDs(groupIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(groupIDs))
	if len(groupIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GroupID uint
		Total   int64
	}
	err := r.db.Model(&model.Question{}).
		Select("group_id, COUNT(*) AS total").
		Where("group_id IN ?", groupIDs).
		Group("group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.GroupID] = row.Total
	}
	return counts, nil
}

func (r *questionRepository) UpdateOwned(id, userID uint, text string) error {
	res := r.db.Model(&model.Question{}).
		Where("id = ? AND created_by = ?", id, userID).
		Update("text", text)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned removes the question and cascades to its answers and likes,
// matching the group cascade semantics.
func (r *questionRepository) DeleteOwned(id, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND created_by = ?", id, userID).Delete(&model.Question{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return cascadeDeleteQuestionRefs(tx, id)
	})
}

func cascadeDeleteQuestionRefs(tx *gorm.DB, questionID uint) error {
	var answerIDs []uint
	if err := tx.Model(&model.Answer{}).Where("question_id = ?", questionID).Pluck("id", &answerIDs).Error; err != nil {
		return err
	}
	if err := tx.Where("type = ? AND ref_id = ?", model.LikeTypeQuestion, questionID).Delete(&model.Like{}).Error; err != nil {
		return err
	}
	if len(answerIDs) > 0 {
		if err := tx.Where("type = ? AND ref_id IN ?", model.LikeTypeAnswer, answerIDs).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
	}
	return nil
}

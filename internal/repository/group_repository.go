package repository

import (
	"gorm.io/gorm"

	"github.com/lshigami/Quokka/internal/model"
)

type GroupRepository interface {
	Create(group *model.Group) error
	FindByID(id uint) (*model.Group, error)
	FindAll() ([]model.Group, error)
	UpdateOwned(id, userID uint, name, description string) error
	DeleteOwned(id, userID uint) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(group *model.Group) error {
	return r.db.Create(group).Error
}

func (r *groupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.Preload("User").First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindAll() ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.Preload("User").Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// UpdateOwned overwrites name/description in a single statement scoped by
// creator. Zero rows affected means the group is absent or owned by someone
// else; both surface as gorm.ErrRecordNotFound so callers cannot tell the
// two cases apart.
func (r *groupRepository) UpdateOwned(id, userID uint, name, description string) error {
	res := r.db.Model(&model.Group{}).
		Where("id = ? AND created_by = ?", id, userID).
		Updates(map[string]interface{}{"name": name, "description": description})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned removes the group and cascades to its questions, their answers,
// and every like referencing either, all in one transaction. Ownership is
// checked by the conditional delete itself.
func (r *groupRepository) DeleteOwned(id, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND created_by = ?", id, userID).Delete(&model.Group{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("group_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) == 0 {
			return nil
		}
		return cascadeDeleteQuestions(tx, questionIDs)
	})
}

// cascadeDeleteQuestions removes the given questions together with their
// answers and the like rows referencing any of them. Likes are hard rows;
// content keeps its soft-delete semantics.
func cascadeDeleteQuestions(tx *gorm.DB, questionIDs []uint) error {
	var answerIDs []uint
	if err := tx.Model(&model.Answer{}).Where("question_id IN ?", questionIDs).Pluck("id", &answerIDs).Error; err != nil {
		return err
	}

	if err := tx.Where("type = ? AND ref_id IN ?", model.LikeTypeQuestion, questionIDs).Delete(&model.Like{}).Error; err != nil {
		return err
	}
	if len(answerIDs) > 0 {
		if err := tx.Where("type = ? AND ref_id IN ?", model.LikeTypeAnswer, answerIDs).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", questionIDs).Delete(&model.Question{}).Error
}

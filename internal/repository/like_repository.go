package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lshigami/Quokka/internal/model"
)

type LikeRepository interface {
	Exists(likeType string, refID, userID uint) (bool, error)
	Toggle(likeType string, refID, userID uint) (bool, error)
	CountByRef(likeType string, refID uint) (int64, error)
	CountByRefIDs(likeType string, refIDs []uint) (map[uint]int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(likeType string, refID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("type = ? AND ref_id = ? AND user_id = ?", likeType, refID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Toggle flips the like state for (type, refId, userId) and reports the
// resulting state. The delete-or-create runs in a transaction; under
// contention the composite unique index is the arbiter. The insert uses ON
// CONFLICT DO NOTHING, so losing the race still lands on liked=true without
// aborting the transaction.
func (r *likeRepository) Toggle(likeType string, refID, userID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("type = ? AND ref_id = ? AND user_id = ?", likeType, refID, userID).Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		like := model.Like{Type: likeType, RefID: refID, UserID: userID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *likeRepository) CountByRef(likeType string, refID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("type = ? AND ref_id = ?", likeType, refID).
		Count(&count).Error
	return count, err
}

// CountByRefIDs aggregates like counts for a batch of content ids in one
// grouped query, so list endpoints avoid a count query per item.
func (r *likeRepository) CountByRefIDs(likeType string, refIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(refIDs))
	if len(refIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		RefID uint
		Total int64
	}
	err := r.db.Model(&model.Like{}).
		Select("ref_id, COUNT(*) AS total").
		Where("type = ? AND ref_id IN ?", likeType, refIDs).
		Group("ref_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.RefID] = row.Total
	}
	return counts, nil
}

package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lshigami/Quokka/internal/model"
)

type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	UpsertByEmail(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertByEmail creates the user or, when the email is already provisioned,
// refreshes the display name. The user struct is reloaded either way so the
// caller sees the stored ID.
func (r *userRepository) UpsertByEmail(user *model.User) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		return err
	}
	return r.db.Where("email = ?", user.Email).First(user).Error
}

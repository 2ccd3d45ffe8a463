package repository

import (
	"context"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByUsername matches case-sensitively.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

// Update persists the profile fields of an existing user.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"bio":        user.Bio,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user with every portfolio and image they own.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var portfolioIDs []uint
		if err := tx.Model(&models.Portfolio{}).
			Where("photographer_id = ?", id).
			Pluck("id", &portfolioIDs).Error; err != nil {
			return err
		}

		if len(portfolioIDs) > 0 {
			if err := tx.Where("portfolio_id IN ?", portfolioIDs).
				Delete(&models.PortfolioImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", portfolioIDs).
				Delete(&models.Portfolio{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

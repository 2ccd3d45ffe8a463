package repository

import (
	"context"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PortfolioRepository interface {
	Create(ctx context.Context, portfolio *models.Portfolio) error
	GetByID(ctx context.Context, id uint) (*models.Portfolio, error)
	GetByIDWithImages(ctx context.Context, id uint) (*models.Portfolio, error)
	ListAll(ctx context.Context) ([]models.Portfolio, error)
	ListByPhotographer(ctx context.Context, photographerID uint) ([]models.Portfolio, error)
	Update(ctx context.Context, portfolio *models.Portfolio) error
	Delete(ctx context.Context, id uint) ([]models.PortfolioImage, error)

	CreateImage(ctx context.Context, image *models.PortfolioImage) error
	GetImageByID(ctx context.Context, id uint) (*models.PortfolioImage, error)
	DeleteImage(ctx context.Context, id uint) error
	ListImageKeysByPhotographer(ctx context.Context, photographerID uint) ([]string, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(ctx context.Context, portfolio *models.Portfolio) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(portfolio).Error)
}

func (r *portfolioRepository) GetByID(ctx context.Context, id uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.WithContext(ctx).Preload("Photographer").First(&portfolio, id).Error; err != nil {
		return nil, translate(err)
	}
	return &portfolio, nil
}

func (r *portfolioRepository) GetByIDWithImages(ctx context.Context, id uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Photographer").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		First(&portfolio, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &portfolio, nil
}

func (r *portfolioRepository) ListAll(ctx context.Context) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Photographer").
		Order("created_date DESC, id DESC").
		Find(&portfolios).Error
	return portfolios, err
}

func (r *portfolioRepository) ListByPhotographer(ctx context.Context, photographerID uint) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Photographer").
		Where("photographer_id = ?", photographerID).
		Order("created_date DESC, id DESC").
		Find(&portfolios).Error
	return portfolios, err
}

// Update writes title, description and category. A map is used so the zero
// category (Portraits) is persisted too.
func (r *portfolioRepository) Update(ctx context.Context, portfolio *models.Portfolio) error {
	result := r.db.WithContext(ctx).Model(&models.Portfolio{}).
		Where("id = ?", portfolio.ID).
		Updates(map[string]interface{}{
			"title":       portfolio.Title,
			"description": portfolio.Description,
			"category":    portfolio.Category,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the portfolio and its images and returns the removed images
// so their stored objects can be cleaned up.
func (r *portfolioRepository) Delete(ctx context.Context, id uint) ([]models.PortfolioImage, error) {
	var images []models.PortfolioImage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.PortfolioImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Portfolio{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *portfolioRepository) CreateImage(ctx context.Context, image *models.PortfolioImage) error {
	return translate(r.db.WithContext(ctx).Create(image).Error)
}

func (r *portfolioRepository) GetImageByID(ctx context.Context, id uint) (*models.PortfolioImage, error) {
	var image models.PortfolioImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (r *portfolioRepository) DeleteImage(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PortfolioImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *portfolioRepository) ListImageKeysByPhotographer(ctx context.Context, photographerID uint) ([]string, error) {
	var images []models.PortfolioImage
	err := r.db.WithContext(ctx).
		Select("portfolio_images.*").
		Joins("JOIN portfolios ON portfolios.id = portfolio_images.portfolio_id").
		Where("portfolios.photographer_id = ?", photographerID).
		Find(&images).Error
	if err != nil {
		return nil, err
	}

	var keys []string
	for i := range images {
		keys = append(keys, images[i].StoredKeys()...)
	}
	return keys, nil
}

package models

import (
	"sort"
	"time"
)

type CreatePortfolioRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Category    Category `json:"category" validate:"portfolio_category"`
}

type UpdatePortfolioRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Category    Category `json:"category" validate:"portfolio_category"`
}

type PortfolioDto struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         Category  `json:"category"`
	CreatedDate      time.Time `json:"createdDate"`
	PhotographerID   uint      `json:"photographerId"`
	PhotographerName string    `json:"photographerName"`
}

type PortfolioImageDto struct {
	ID           uint   `json:"id"`
	ImageURL     string `json:"imageUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
}

type PortfolioWithImagesDto struct {
	PortfolioDto
	Images []PortfolioImageDto `json:"images"`
}

func NewPortfolioDto(p *Portfolio) PortfolioDto {
	dto := PortfolioDto{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		CreatedDate:    p.CreatedDate,
		PhotographerID: p.PhotographerID,
	}
	if p.Photographer.ID != 0 {
		dto.PhotographerName = p.Photographer.FullName()
	}
	return dto
}

func NewPortfolioImageDto(i *PortfolioImage) PortfolioImageDto {
	return PortfolioImageDto{
		ID:           i.ID,
		ImageURL:     i.ImageURL,
		ThumbnailURL: i.ThumbnailURL,
		DisplayOrder: i.DisplayOrder,
	}
}

// NewPortfolioWithImagesDto renders images ascending by display order; ties
// keep their insertion (id) order.
func NewPortfolioWithImagesDto(p *Portfolio) PortfolioWithImagesDto {
	images := make([]PortfolioImage, len(p.Images))
	copy(images, p.Images)
	sort.SliceStable(images, func(a, b int) bool {
		if images[a].DisplayOrder != images[b].DisplayOrder {
			return images[a].DisplayOrder < images[b].DisplayOrder
		}
		return images[a].ID < images[b].ID
	})

	dto := PortfolioWithImagesDto{
		PortfolioDto: NewPortfolioDto(p),
		Images:       make([]PortfolioImageDto, 0, len(images)),
	}
	for i := range images {
		dto.Images = append(dto.Images, NewPortfolioImageDto(&images[i]))
	}
	return dto
}

type AddImageRequest struct {
	ImageURL     string `json:"imageUrl" validate:"required,url,max=1024"`
	DisplayOrder int    `json:"displayOrder"`
}

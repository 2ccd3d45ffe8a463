package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type Category int

const (
	CategoryPortraits Category = iota
	CategoryOutdoors
	CategoryProducts
	CategoryWedding
	CategoryEvents
	CategoryFashion
	CategoryArchitecture
	CategoryWildlife
	CategorySports
	CategoryFood
	CategoryOther
)

var categoryNames = [...]string{
	"Portraits",
	"Outdoors",
	"Products",
	"Wedding",
	"Events",
	"Fashion",
	"Architecture",
	"Wildlife",
	"Sports",
	"Food",
	"Other",
}

func (c Category) Valid() bool {
	return c >= CategoryPortraits && c <= CategoryOther
}

func (c Category) String() string {
	if !c.Valid() {
		return "Other"
	}
	return categoryNames[c]
}

// ParseCategory accepts either the category name or its integer value.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Category(n).Valid() {
		return Category(n), nil
	}
	return CategoryOther, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if !Category(n).Valid() {
			return fmt.Errorf("unknown category %d", n)
		}
		*c = Category(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("category must be a string or integer")
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type Portfolio struct {
	ID             uint             `json:"id" gorm:"primaryKey"`
	Title          string           `json:"title" gorm:"size:100;not null"`
	Description    string           `json:"description" gorm:"size:500;not null"`
	Category       Category         `json:"category" gorm:"not null"`
	CreatedDate    time.Time        `json:"createdDate" gorm:"not null"`
	PhotographerID uint             `json:"photographerId" gorm:"not null;index"`
	Photographer   User             `json:"-" gorm:"foreignKey:PhotographerID;constraint:OnDelete:CASCADE"`
	Images         []PortfolioImage `json:"images,omitempty" gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE"`
}

// PortfolioImage keeps the storage keys next to the public URLs so the stored
// objects can be removed together with the row.
type PortfolioImage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ImageURL     string    `json:"imageUrl" gorm:"size:1024;not null"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty" gorm:"size:1024"`
	StorageKey   string    `json:"-" gorm:"size:255"`
	ThumbnailKey string    `json:"-" gorm:"size:255"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;index"`
	PortfolioID  uint      `json:"portfolioId" gorm:"not null;index"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StoredKeys lists the non-empty storage keys owned by the image.
func (i *PortfolioImage) StoredKeys() []string {
	var keys []string
	if i.StorageKey != "" {
		keys = append(keys, i.StorageKey)
	}
	if i.ThumbnailKey != "" {
		keys = append(keys, i.ThumbnailKey)
	}
	return keys
}

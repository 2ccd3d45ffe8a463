package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/repository"
	"github.com/karinaconstandache/PhotoBooker/pkg/storage"
	"github.com/karinaconstandache/PhotoBooker/pkg/utils"
	"go.uber.org/zap"
)

// MaxImageSize is the largest accepted upload.
const MaxImageSize = 20 << 20

const (
	msgPortfolioNotFound = "Portfolio not found"
	msgImageNotFound     = "Image not found"
	msgNotOwner          = "You do not have permission to modify this portfolio"
	msgUnsupportedImage  = "Only JPG and PNG files are allowed"
)

// allowedExtensions maps accepted file extensions to the content type their
// bytes must sniff as.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ImageUpload is an uploaded file as the transport received it.
type ImageUpload struct {
	Filename     string
	Size         int64
	Content      io.Reader
	DisplayOrder int
}

// IsOwner is the single ownership rule for every portfolio mutation.
func IsOwner(portfolio *models.Portfolio, callerID uint) bool {
	return portfolio != nil && callerID != 0 && portfolio.PhotographerID == callerID
}

type PortfolioService struct {
	portfolioRepo repository.PortfolioRepository
	userRepo      repository.UserRepository
	storage       storage.ObjectStorage
	validator     *utils.Validator
	logger        *zap.Logger
	now           func() time.Time
}

func NewPortfolioService(
	portfolioRepo repository.PortfolioRepository,
	userRepo repository.UserRepository,
	objectStorage storage.ObjectStorage,
	validator *utils.Validator,
	logger *zap.Logger,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		userRepo:      userRepo,
		storage:       objectStorage,
		validator:     validator,
		logger:        logger.Named("portfolio"),
		now:           time.Now,
	}
}

func (s *PortfolioService) ListAll(ctx context.Context) ([]models.PortfolioDto, error) {
	portfolios, err := s.portfolioRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	return toPortfolioDtos(portfolios), nil
}

func (s *PortfolioService) ListByPhotographer(ctx context.Context, photographerID uint) ([]models.PortfolioDto, error) {
	portfolios, err := s.portfolioRepo.ListByPhotographer(ctx, photographerID)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	return toPortfolioDtos(portfolios), nil
}

func (s *PortfolioService) ListMine(ctx context.Context, callerID uint) ([]models.PortfolioDto, error) {
	return s.ListByPhotographer(ctx, callerID)
}

func (s *PortfolioService) GetPortfolio(ctx context.Context, id uint) (*models.PortfolioWithImagesDto, error) {
	portfolio, err := s.portfolioRepo.GetByIDWithImages(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewNotFoundError(msgPortfolioNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	dto := models.NewPortfolioWithImagesDto(portfolio)
	return &dto, nil
}

func (s *PortfolioService) CreatePortfolio(ctx context.Context, callerID uint, req models.CreatePortfolioRequest) (*models.PortfolioDto, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	owner, err := s.userRepo.GetByID(ctx, callerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewValidationError(msgPhotographerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find photographer: %w", err)
	}
	if !owner.IsPhotographer() {
		return nil, NewValidationError(msgPhotographerNotFound)
	}

	portfolio := &models.Portfolio{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		CreatedDate:    s.now().UTC(),
		PhotographerID: owner.ID,
	}
	if err := s.portfolioRepo.Create(ctx, portfolio); err != nil {
		return nil, fmt.Errorf("create portfolio: %w", err)
	}
	portfolio.Photographer = *owner

	s.logger.Info("portfolio created",
		zap.Uint("portfolio_id", portfolio.ID),
		zap.Uint("photographer_id", owner.ID),
		zap.Stringer("category", portfolio.Category),
	)

	dto := models.NewPortfolioDto(portfolio)
	return &dto, nil
}

func (s *PortfolioService) UpdatePortfolio(ctx context.Context, id, callerID uint, req models.UpdatePortfolioRequest) (*models.PortfolioDto, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	portfolio, err := s.ownedPortfolio(ctx, id, callerID, NewNotFoundError(msgPortfolioNotFound))
	if err != nil {
		return nil, err
	}

	portfolio.Title = req.Title
	portfolio.Description = req.Description
	portfolio.Category = req.Category
	if err := s.portfolioRepo.Update(ctx, portfolio); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError(msgPortfolioNotFound)
		}
		return nil, fmt.Errorf("update portfolio: %w", err)
	}

	s.logger.Info("portfolio updated", zap.Uint("portfolio_id", id), zap.Uint("photographer_id", callerID))

	dto := models.NewPortfolioDto(portfolio)
	return &dto, nil
}

func (s *PortfolioService) DeletePortfolio(ctx context.Context, id, callerID uint) error {
	if _, err := s.ownedPortfolio(ctx, id, callerID, NewNotFoundError(msgPortfolioNotFound)); err != nil {
		return err
	}

	removed, err := s.portfolioRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewNotFoundError(msgPortfolioNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete portfolio: %w", err)
	}

	var keys []string
	for i := range removed {
		keys = append(keys, removed[i].StoredKeys()...)
	}
	removeObjects(ctx, s.storage, s.logger, keys)

	s.logger.Info("portfolio deleted",
		zap.Uint("portfolio_id", id),
		zap.Uint("photographer_id", callerID),
		zap.Int("images", len(removed)),
	)
	return nil
}

// AddImage attaches an image that is already hosted elsewhere.
func (s *PortfolioService) AddImage(ctx context.Context, portfolioID, callerID uint, req models.AddImageRequest) (*models.PortfolioImageDto, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}
	if _, err := s.ownedPortfolio(ctx, portfolioID, callerID, NewValidationError(msgPortfolioNotFound)); err != nil {
		return nil, err
	}

	image := &models.PortfolioImage{
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		PortfolioID:  portfolioID,
	}
	if err := s.portfolioRepo.CreateImage(ctx, image); err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}

	s.logger.Info("image added", zap.Uint("portfolio_id", portfolioID), zap.Uint("image_id", image.ID))

	dto := models.NewPortfolioImageDto(image)
	return &dto, nil
}

// UploadImage validates the file completely before anything is written.
func (s *PortfolioService) UploadImage(ctx context.Context, portfolioID, callerID uint, upload ImageUpload) (*models.PortfolioImageDto, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	wantType, ok := allowedExtensions[ext]
	if !ok {
		return nil, NewValidationError(msgUnsupportedImage)
	}
	if upload.Size <= 0 || upload.Content == nil {
		return nil, NewValidationError("No file uploaded")
	}
	if upload.Size > MaxImageSize {
		return nil, NewValidationError("File size must not exceed 20 MB")
	}

	contentType, content, err := storage.DetectContentType(upload.Content)
	if err != nil {
		return nil, fmt.Errorf("sniff upload: %w", err)
	}
	if s.validator.Var(contentType, "supported_image") != nil || contentType != wantType {
		return nil, NewValidationError(msgUnsupportedImage)
	}

	// The declared size is not trusted.
	data, err := io.ReadAll(io.LimitReader(content, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, NewValidationError("File size must not exceed 20 MB")
	}
	if err := storage.CheckDimensions(data); err != nil {
		if errors.Is(err, storage.ErrImageTooLarge) {
			return nil, NewValidationError("Image dimensions are too large")
		}
		return nil, NewValidationError(msgUnsupportedImage)
	}

	if _, err := s.ownedPortfolio(ctx, portfolioID, callerID, NewValidationError(msgPortfolioNotFound)); err != nil {
		return nil, err
	}

	key := storage.NewImageKey(portfolioID, ext)
	imageURL, err := s.storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	stored := []string{key}

	image := &models.PortfolioImage{
		ImageURL:     imageURL,
		StorageKey:   key,
		DisplayOrder: upload.DisplayOrder,
		PortfolioID:  portfolioID,
	}

	if thumb, err := storage.Thumbnail(data); err != nil {
		s.logger.Warn("thumbnail skipped", zap.String("key", key), zap.Error(err))
	} else {
		thumbKey := storage.ThumbnailKey(key)
		thumbURL, err := s.storage.Put(ctx, thumbKey, bytes.NewReader(thumb), int64(len(thumb)), "image/jpeg")
		if err != nil {
			s.logger.Warn("thumbnail not stored", zap.String("key", thumbKey), zap.Error(err))
		} else {
			image.ThumbnailURL = thumbURL
			image.ThumbnailKey = thumbKey
			stored = append(stored, thumbKey)
		}
	}

	if err := s.portfolioRepo.CreateImage(ctx, image); err != nil {
		removeObjects(ctx, s.storage, s.logger, stored)
		return nil, fmt.Errorf("create image: %w", err)
	}

	s.logger.Info("image uploaded",
		zap.Uint("portfolio_id", portfolioID),
		zap.Uint("image_id", image.ID),
		zap.Int("bytes", len(data)),
	)

	dto := models.NewPortfolioImageDto(image)
	return &dto, nil
}

// DeleteImage resolves the parent portfolio for the ownership check. An image
// whose portfolio no longer exists cannot be owned by anyone.
func (s *PortfolioService) DeleteImage(ctx context.Context, imageID, callerID uint) error {
	image, err := s.portfolioRepo.GetImageByID(ctx, imageID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewNotFoundError(msgImageNotFound)
	}
	if err != nil {
		return fmt.Errorf("get image: %w", err)
	}

	if _, err := s.ownedPortfolio(ctx, image.PortfolioID, callerID, NewAuthorizationError(msgNotOwner)); err != nil {
		return err
	}

	if err := s.portfolioRepo.DeleteImage(ctx, imageID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFoundError(msgImageNotFound)
		}
		return fmt.Errorf("delete image: %w", err)
	}

	removeObjects(ctx, s.storage, s.logger, image.StoredKeys())
	s.logger.Info("image deleted", zap.Uint("image_id", imageID), zap.Uint("portfolio_id", image.PortfolioID))
	return nil
}

// ownedPortfolio loads the portfolio and applies IsOwner. missing is returned
// when the portfolio does not exist.
func (s *PortfolioService) ownedPortfolio(ctx context.Context, id, callerID uint, missing error) (*models.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, missing
	}
	if err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	if !IsOwner(portfolio, callerID) {
		s.logger.Warn("ownership check failed",
			zap.Uint("portfolio_id", id),
			zap.Uint("owner_id", portfolio.PhotographerID),
			zap.Uint("caller_id", callerID),
		)
		return nil, NewAuthorizationError(msgNotOwner)
	}
	return portfolio, nil
}

func toPortfolioDtos(portfolios []models.Portfolio) []models.PortfolioDto {
	dtos := make([]models.PortfolioDto, 0, len(portfolios))
	for i := range portfolios {
		dtos = append(dtos, models.NewPortfolioDto(&portfolios[i]))
	}
	return dtos
}

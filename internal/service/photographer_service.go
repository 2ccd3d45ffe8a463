package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/repository"
	"github.com/karinaconstandache/PhotoBooker/pkg/qrcode"
	"github.com/karinaconstandache/PhotoBooker/pkg/storage"
	"github.com/karinaconstandache/PhotoBooker/pkg/utils"
	"go.uber.org/zap"
)

const msgPhotographerNotFound = "Photographer not found"

type PhotographerService struct {
	userRepo      repository.UserRepository
	portfolioRepo repository.PortfolioRepository
	storage       storage.ObjectStorage
	qr            *qrcode.QRService
	validator     *utils.Validator
	logger        *zap.Logger
}

func NewPhotographerService(
	userRepo repository.UserRepository,
	portfolioRepo repository.PortfolioRepository,
	objectStorage storage.ObjectStorage,
	qr *qrcode.QRService,
	validator *utils.Validator,
	logger *zap.Logger,
) *PhotographerService {
	return &PhotographerService{
		userRepo:      userRepo,
		portfolioRepo: portfolioRepo,
		storage:       objectStorage,
		qr:            qr,
		validator:     validator,
		logger:        logger.Named("photographer"),
	}
}

func (s *PhotographerService) ListPhotographers(ctx context.Context) ([]models.PhotographerDto, error) {
	users, err := s.userRepo.ListByRole(ctx, models.RolePhotographer)
	if err != nil {
		return nil, fmt.Errorf("list photographers: %w", err)
	}

	dtos := make([]models.PhotographerDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, models.NewPhotographerDto(&users[i]))
	}
	return dtos, nil
}

func (s *PhotographerService) GetPhotographer(ctx context.Context, id uint) (*models.PhotographerDto, error) {
	user, err := s.findPhotographer(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := models.NewPhotographerDto(user)
	return &dto, nil
}

// UpdateOwnProfile only ever touches the caller's own row.
func (s *PhotographerService) UpdateOwnProfile(ctx context.Context, callerID uint, req models.UpdateProfileRequest) (*models.PhotographerDto, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	user, err := s.findPhotographer(ctx, callerID)
	if err != nil {
		return nil, err
	}

	user.Bio = req.Bio
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError(msgPhotographerNotFound)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.logger.Info("profile updated", zap.Uint("photographer_id", callerID))

	dto := models.NewPhotographerDto(user)
	return &dto, nil
}

// DeleteOwnAccount removes the caller with all portfolios and images, then the
// stored files of those images.
func (s *PhotographerService) DeleteOwnAccount(ctx context.Context, callerID uint) error {
	if _, err := s.findPhotographer(ctx, callerID); err != nil {
		return err
	}

	keys, err := s.portfolioRepo.ListImageKeysByPhotographer(ctx, callerID)
	if err != nil {
		return fmt.Errorf("list stored images: %w", err)
	}

	if err := s.userRepo.Delete(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFoundError(msgPhotographerNotFound)
		}
		return fmt.Errorf("delete account: %w", err)
	}

	removeObjects(ctx, s.storage, s.logger, keys)
	s.logger.Info("account deleted", zap.Uint("photographer_id", callerID), zap.Int("objects", len(keys)))
	return nil
}

// ProfileQRCode renders a PNG that links to the photographer's public page.
func (s *PhotographerService) ProfileQRCode(ctx context.Context, id uint, size int) ([]byte, error) {
	if size < qrcode.MinSize || size > qrcode.MaxSize {
		return nil, NewValidationError(fmt.Sprintf("size must be between %d and %d", qrcode.MinSize, qrcode.MaxSize))
	}
	if _, err := s.findPhotographer(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qr.GenerateProfileQRCode(id, size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return png, nil
}

func (s *PhotographerService) findPhotographer(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewNotFoundError(msgPhotographerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find photographer: %w", err)
	}
	if !user.IsPhotographer() {
		return nil, NewNotFoundError(msgPhotographerNotFound)
	}
	return user, nil
}

// removeObjects deletes stored files whose rows are already gone.
func removeObjects(ctx context.Context, store storage.ObjectStorage, logger *zap.Logger, keys []string) {
	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil {
			logger.Warn("stored object not removed", zap.String("key", key), zap.Error(err))
		}
	}
}

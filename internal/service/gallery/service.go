package gallery

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourService/internal/service/gallery/models"
)

// Service сервис чтения галереи
type Service struct {
	imageRepo ImageRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса галереи
func NewService(imageRepo ImageRepository, logger Logger) *Service {
	return &Service{imageRepo: imageRepo, logger: logger}
}

// List получает изображения; пустая категория означает все
func (s *Service) List(ctx context.Context, category string) (*models.ImageListResponse, error) {
	var filter *string
	if c := strings.TrimSpace(category); c != "" {
		filter = &c
	}

	images, err := s.imageRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for category=%q: %v", category, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d images for category=%q", len(images), category)
	return models.FromDomainImageList(images), nil
}

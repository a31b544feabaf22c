package gallery_bulk_delete

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/integrations/cloudinary"
	"github.com/m04kA/SMC-TourService/pkg/bulk"
)

const operation = "gallery_delete"

// UseCase пакетное удаление изображений галереи
type UseCase struct {
	galleryRepo GalleryRepository
	imageHost   ImageHost
	observer    BulkObserver
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(galleryRepo GalleryRepository, imageHost ImageHost, observer BulkObserver, logger Logger) *UseCase {
	return &UseCase{
		galleryRepo: galleryRepo,
		imageHost:   imageHost,
		observer:    observer,
		logger:      logger,
	}
}

// Execute удаляет изображения по одному: запись, хостинг, запись из БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GalleryBulkDelete: ids=%v", req.IDs)

	// 1. Валидация входных данных
	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("%w: at least one id is required", ErrInvalidInput)
	}
	if len(req.IDs) > domain.MaxBulkItems {
		return nil, fmt.Errorf("%w: at most %d ids per request", ErrInvalidInput, domain.MaxBulkItems)
	}

	// 2. Удаление
	res := bulk.Run(ctx, req.IDs, uc.deleteOne)

	if uc.observer != nil {
		uc.observer.ObserveBulk(operation, res.SuccessCount, res.FailureCount)
	}

	uc.logger.Info("GalleryBulkDelete: done, success=%d, failure=%d", res.SuccessCount, res.FailureCount)
	return &Response{SuccessCount: res.SuccessCount, FailureCount: res.FailureCount}, nil
}

func (uc *UseCase) deleteOne(ctx context.Context, id int64) error {
	img, err := uc.galleryRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warn("GalleryBulkDelete: failed to get image id=%d: %v", id, err)
		return err
	}

	// Если на хостинге изображения уже нет, запись всё равно удаляем
	if err := uc.imageHost.Destroy(ctx, img.PublicID); err != nil && !errors.Is(err, cloudinary.ErrNotFound) {
		uc.logger.Warn("GalleryBulkDelete: failed to destroy public_id=%s: %v", img.PublicID, err)
		return err
	}

	if err := uc.galleryRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("GalleryBulkDelete: destroyed public_id=%s but failed to delete row id=%d: %v",
			img.PublicID, id, err)
		return err
	}
	return nil
}

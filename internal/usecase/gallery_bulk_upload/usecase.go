package gallery_bulk_upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/bulk"
)

const operation = "gallery_upload"

// UseCase пакетная загрузка изображений в галерею
type UseCase struct {
	galleryRepo GalleryRepository
	imageHost   ImageHost
	observer    BulkObserver
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// observer может быть nil
func NewUseCase(galleryRepo GalleryRepository, imageHost ImageHost, observer BulkObserver, logger Logger) *UseCase {
	return &UseCase{
		galleryRepo: galleryRepo,
		imageHost:   imageHost,
		observer:    observer,
		logger:      logger,
	}
}

// Execute загружает файлы по одному: хостинг, затем запись в БД
// Ошибка одного файла не останавливает остальные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GalleryBulkUpload: category=%s, files=%d", req.Category, len(req.Files))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GalleryBulkUpload: validation failed: %v", err)
		return nil, err
	}

	// 2. Загрузка
	res := bulk.Run(ctx, req.Files, func(ctx context.Context, f File) error {
		return uc.uploadOne(ctx, req, f)
	})

	if uc.observer != nil {
		uc.observer.ObserveBulk(operation, res.SuccessCount, res.FailureCount)
	}

	uc.logger.Info("GalleryBulkUpload: done, success=%d, failure=%d", res.SuccessCount, res.FailureCount)
	return &Response{SuccessCount: res.SuccessCount, FailureCount: res.FailureCount}, nil
}

func (uc *UseCase) uploadOne(ctx context.Context, req *Request, f File) error {
	rc, err := f.Open()
	if err != nil {
		uc.logger.Warn("GalleryBulkUpload: failed to open %s: %v", f.Filename, err)
		return err
	}
	defer rc.Close()

	uploaded, err := uc.imageHost.Upload(ctx, rc, req.Category)
	if err != nil {
		uc.logger.Warn("GalleryBulkUpload: failed to upload %s: %v", f.Filename, err)
		return err
	}

	title := req.Title
	if title == "" {
		title = titleFromFilename(f.Filename)
	}

	_, err = uc.galleryRepo.Create(ctx, &domain.GalleryImage{
		Title:    title,
		Category: req.Category,
		URL:      uploaded.URL,
		PublicID: uploaded.PublicID,
	})
	if err != nil {
		// Изображение уже на хостинге; откатов нет
		uc.logger.Error("GalleryBulkUpload: uploaded %s (public_id=%s) but failed to save: %v",
			f.Filename, uploaded.PublicID, err)
		return err
	}
	return nil
}

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if len(req.Files) == 0 {
		return fmt.Errorf("%w: at least one file is required", ErrInvalidInput)
	}
	if len(req.Files) > domain.MaxBulkItems {
		return fmt.Errorf("%w: at most %d files per request", ErrInvalidInput, domain.MaxBulkItems)
	}
	if len(req.Title) > domain.MaxGalleryTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxGalleryTitleLength)
	}
	return nil
}

// titleFromFilename "sigiriya-rock.jpg" -> "sigiriya-rock"
func titleFromFilename(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

package models

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// ImageResponse ответ с данными изображения
type ImageResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
}

// ImageListResponse ответ со списком изображений
type ImageListResponse struct {
	Images []*ImageResponse `json:"images"`
	Total  int              `json:"total"`
}

// FromDomainImageList конвертирует список изображений
func FromDomainImageList(images []*domain.GalleryImage) *ImageListResponse {
	result := make([]*ImageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, &ImageResponse{
			ID:        img.ID,
			Title:     img.Title,
			Category:  img.Category,
			URL:       img.URL,
			CreatedAt: img.CreatedAt.Format(time.RFC3339),
		})
	}
	return &ImageListResponse{Images: result, Total: len(result)}
}

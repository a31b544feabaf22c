package gallery_bulk_delete

import galleryDelete "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_delete"

// BulkDeleteRequest HTTP request model
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,max=100,dive,gt=0"`
}

// BulkResultResponse HTTP response model
type BulkResultResponse struct {
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BulkDeleteRequest) ToUseCaseRequest() *galleryDelete.Request {
	return &galleryDelete.Request{IDs: r.IDs}
}

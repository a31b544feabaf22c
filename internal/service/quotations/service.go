package quotations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourService/internal/domain"
	quotationRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/quotation"
	"github.com/m04kA/SMC-TourService/internal/pricing"
	"github.com/m04kA/SMC-TourService/internal/service/quotations/models"
)

// Service сервис для работы с котировками
type Service struct {
	quotationRepo QuotationRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса котировок
func NewService(quotationRepo QuotationRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		quotationRepo: quotationRepo,
		txManager:     txManager,
		timeProvider:  realTimeProvider{},
		logger:        logger,
	}
}

// GetByID получает котировку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.QuotationResponse, error) {
	s.logger.Info("GetByID: fetching quotation id=%d", id)

	q, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, quotationRepo.ErrQuotationNotFound) {
			s.logger.Warn("GetByID: quotation id=%d not found", id)
			return nil, ErrQuotationNotFound
		}
		s.logger.Error("GetByID: repository error for quotation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainQuotation(q, s.timeProvider.Now()), nil
}

// List получает список котировок с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListQuotationsRequest) (*models.QuotationListResponse, error) {
	s.logger.Info("List: fetching quotations status=%v, serviceType=%v", req.Status, req.ServiceType)

	filter := domain.QuotationsFilter{
		CustomerEmail: req.CustomerEmail,
		Limit:         req.Limit,
		Offset:        req.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = domain.DefaultQuotationsLimit
	}

	if req.Status != nil {
		status, err := models.ToDomainQuotationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}
	if req.ServiceType != nil {
		st := pricing.ServiceType(*req.ServiceType)
		if !st.IsValid() {
			s.logger.Warn("List: invalid serviceType=%s", *req.ServiceType)
			return nil, fmt.Errorf("%w: invalid serviceType", ErrInvalidInput)
		}
		filter.ServiceType = &st
	}

	quotations, err := s.quotationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d quotations", len(quotations))
	return models.FromDomainQuotationList(quotations, s.timeProvider.Now()), nil
}

// UpdateStatus меняет статус котировки с проверкой допустимости перехода
// Чтение и запись выполняются в одной транзакции
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.QuotationResponse, error) {
	s.logger.Info("UpdateStatus: quotation id=%d to status=%s by user=%d", id, req.Status, req.UserID)

	newStatus, err := models.ToDomainQuotationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for quotation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	var result *domain.Quotation

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		q, err := s.quotationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, quotationRepo.ErrQuotationNotFound) {
				return ErrQuotationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get quotation: %v", ErrInternal, err)
		}

		if !q.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, newStatus)
		}

		from := []domain.QuotationStatus{q.Status}
		if err := s.quotationRepo.UpdateStatus(txCtx, id, from, newStatus, now); err != nil {
			if errors.Is(err, quotationRepo.ErrStatusConflict) {
				return fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
			}
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}

		q.Status = newStatus
		q.UpdatedAt = now
		if newStatus == domain.QuotationSent {
			q.SentAt = &now
		}
		result = q
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("UpdateStatus: quotation id=%d: %v", id, err)
		} else {
			s.logger.Warn("UpdateStatus: quotation id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: quotation id=%d is now %s", id, newStatus)
	return models.FromDomainQuotation(result, now), nil
}

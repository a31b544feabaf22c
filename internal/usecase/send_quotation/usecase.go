package send_quotation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/invoice"
	quotationRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/quotation"
	"github.com/m04kA/SMC-TourService/internal/integrations/sendgrid"
)

// sendableFrom статусы, из которых котировка переводится в sent
var sendableFrom = []domain.QuotationStatus{domain.QuotationDraft, domain.QuotationSent}

// UseCase отправка котировки клиенту
//
// Три шага выполняются строго по очереди: счёт, письмо, статус.
// Ошибка на шаге останавливает цепочку, выполненные шаги не откатываются.
type UseCase struct {
	quotationRepo  QuotationRepository
	invoiceRepo    InvoiceRepository
	emailSender    EmailSender
	invoiceDueDays int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	quotationRepo QuotationRepository,
	invoiceRepo InvoiceRepository,
	emailSender EmailSender,
	invoiceDueDays int,
	logger Logger,
) *UseCase {
	if invoiceDueDays <= 0 {
		invoiceDueDays = domain.DefaultInvoiceDueDays
	}
	return &UseCase{
		quotationRepo:  quotationRepo,
		invoiceRepo:    invoiceRepo,
		emailSender:    emailSender,
		invoiceDueDays: invoiceDueDays,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case отправки котировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SendQuotation: quotation=%d, by=%d", req.QuotationID, req.RequestedBy)

	// 1. Валидация входных данных
	if req.QuotationID <= 0 {
		return nil, fmt.Errorf("%w: quotationId must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Получаем котировку и проверяем статус
	q, err := uc.quotationRepo.GetByID(ctx, req.QuotationID)
	if err != nil {
		if errors.Is(err, quotationRepo.ErrQuotationNotFound) {
			uc.logger.Warn("SendQuotation: quotation id=%d not found", req.QuotationID)
			return nil, ErrQuotationNotFound
		}
		uc.logger.Error("SendQuotation: failed to get quotation id=%d: %v", req.QuotationID, err)
		return nil, fmt.Errorf("%w: failed to get quotation: %v", ErrInternal, err)
	}

	if !q.CanBeSent() {
		uc.logger.Warn("SendQuotation: quotation id=%d has status %s", q.ID, q.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrInvalidStatus, q.Status)
	}
	if q.IsExpiredAt(now) {
		uc.logger.Warn("SendQuotation: quotation id=%d expired at %s", q.ID, q.ValidUntil.Format(time.RFC3339))
		return nil, ErrQuotationExpired
	}

	// 3. Шаг 1: счёт (повторная отправка использует уже выставленный счёт)
	inv, err := uc.issueInvoice(ctx, q, now)
	if err != nil {
		return nil, err
	}

	// 4. Шаг 2: письмо
	err = uc.emailSender.SendInvoice(ctx, sendgrid.InvoiceEmail{
		CustomerName:    q.CustomerName,
		CustomerEmail:   q.CustomerEmail,
		QuotationNumber: q.QuotationNumber,
		InvoiceNumber:   inv.InvoiceNumber,
		ServiceName:     serviceName(q),
		StartDate:       q.StartDate,
		EndDate:         q.EndDate,
		Days:            q.Days,
		Currency:        q.Currency,
		TotalAmount:     inv.TotalAmount,
		DepositAmount:   inv.DepositAmount,
		RemainingAmount: inv.RemainingAmount,
		DueDate:         inv.DueDate,
		ValidUntil:      q.ValidUntil,
	})
	if err != nil {
		uc.logger.Error("SendQuotation: failed to send email for quotation id=%d, invoice=%s: %v",
			q.ID, inv.InvoiceNumber, err)
		return nil, fmt.Errorf("%w: %v", ErrEmailFailed, err)
	}

	// 5. Шаг 3: статус. Просмотренную котировку назад в sent не переводим.
	// Обновление условное: если котировку успели принять или отклонить, статус не трогаем
	status := domain.QuotationSent
	if q.Status == domain.QuotationViewed {
		status = domain.QuotationViewed
	} else if err := uc.quotationRepo.UpdateStatus(ctx, q.ID, sendableFrom, domain.QuotationSent, now); err != nil {
		if errors.Is(err, quotationRepo.ErrStatusConflict) {
			uc.logger.Warn("SendQuotation: email sent but quotation id=%d changed status meanwhile", q.ID)
			return nil, ErrStatusChanged
		}
		uc.logger.Error("SendQuotation: email sent but failed to mark quotation id=%d as sent: %v", q.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrMarkSentFailed, err)
	}

	uc.logger.Info("SendQuotation: quotation id=%d sent with invoice %s", q.ID, inv.InvoiceNumber)

	return &Response{
		QuotationID:     q.ID,
		QuotationNumber: q.QuotationNumber,
		InvoiceID:       inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		Status:          string(status),
		SentAt:          now,
	}, nil
}

func (uc *UseCase) issueInvoice(ctx context.Context, q *domain.Quotation, now time.Time) (*domain.Invoice, error) {
	existing, err := uc.invoiceRepo.GetIssuedByQuotationID(ctx, q.ID)
	if err == nil {
		uc.logger.Info("SendQuotation: reusing invoice %s for quotation id=%d", existing.InvoiceNumber, q.ID)
		return existing, nil
	}
	if !errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
		uc.logger.Error("SendQuotation: failed to look up invoice for quotation id=%d: %v", q.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvoiceFailed, err)
	}

	created, err := uc.invoiceRepo.Create(ctx, &domain.Invoice{
		InvoiceNumber:   domain.NewDocumentNumber(domain.InvoiceNumberPrefix, now),
		QuotationID:     q.ID,
		CustomerName:    q.CustomerName,
		CustomerEmail:   q.CustomerEmail,
		Currency:        q.Currency,
		TotalAmount:     q.Subtotal,
		DepositAmount:   q.DepositAmount,
		RemainingAmount: q.RemainingAmount,
		DueDate:         dueDate(now, uc.invoiceDueDays, q.StartDate),
		Status:          domain.InvoiceIssued,
	})
	if err != nil {
		uc.logger.Error("SendQuotation: failed to create invoice for quotation id=%d: %v", q.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvoiceFailed, err)
	}

	return created, nil
}

// dueDate срок оплаты: now + dueDays, но не позже начала услуги
func dueDate(now time.Time, dueDays int, start time.Time) time.Time {
	due := now.AddDate(0, 0, dueDays)
	if !start.IsZero() && start.After(now) && start.Before(due) {
		return start
	}
	return due
}

func serviceName(q *domain.Quotation) string {
	if q.ItemName != "" {
		return q.ItemName
	}
	return string(q.ServiceType)
}

package send_quotation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	sendQuotation "github.com/m04kA/SMC-TourService/internal/usecase/send_quotation"
)

const (
	msgInvalidQuotationID = "некорректный ID котировки"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "котировка не найдена"
	msgInvalidStatus      = "котировку в текущем статусе нельзя отправить"
	msgExpired            = "срок действия котировки истёк"
	msgInvoiceFailed      = "не удалось выставить счёт"
	msgEmailFailed        = "не удалось отправить письмо клиенту, счёт сохранён"
	msgMarkSentFailed     = "письмо отправлено, но статус котировки не обновлён"
	msgStatusChanged      = "письмо отправлено, но котировку уже приняли или отклонили"
)

type Handler struct {
	useCase SendQuotationUseCase
	logger  Logger
}

func NewHandler(useCase SendQuotationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotations/{quotationId}/send
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quotationID, err := strconv.ParseInt(mux.Vars(r)["quotationId"], 10, 64)
	if err != nil || quotationID <= 0 {
		h.logger.Warn("POST /quotations/{id}/send - Invalid quotation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuotationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /quotations/{id}/send - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sendQuotation.Request{
		QuotationID: quotationID,
		RequestedBy: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, sendQuotation.ErrQuotationNotFound):
			h.logger.Warn("POST /quotations/{id}/send - Quotation not found: quotation_id=%d", quotationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sendQuotation.ErrInvalidStatus):
			h.logger.Warn("POST /quotations/{id}/send - Invalid status: quotation_id=%d", quotationID)
			handlers.RespondConflict(w, msgInvalidStatus)

		case errors.Is(err, sendQuotation.ErrQuotationExpired):
			h.logger.Warn("POST /quotations/{id}/send - Quotation expired: quotation_id=%d", quotationID)
			handlers.RespondConflict(w, msgExpired)

		case errors.Is(err, sendQuotation.ErrInvoiceFailed):
			h.logger.Error("POST /quotations/{id}/send - Invoice step failed: quotation_id=%d, error=%v", quotationID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvoiceFailed)

		case errors.Is(err, sendQuotation.ErrEmailFailed):
			h.logger.Error("POST /quotations/{id}/send - Email step failed: quotation_id=%d, error=%v", quotationID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgEmailFailed)

		case errors.Is(err, sendQuotation.ErrStatusChanged):
			h.logger.Warn("POST /quotations/{id}/send - Status changed while sending: quotation_id=%d", quotationID)
			handlers.RespondConflict(w, msgStatusChanged)

		case errors.Is(err, sendQuotation.ErrMarkSentFailed):
			h.logger.Error("POST /quotations/{id}/send - Mark sent step failed: quotation_id=%d, error=%v", quotationID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgMarkSentFailed)

		default:
			h.logger.Error("POST /quotations/{id}/send - Failed to send quotation: quotation_id=%d, error=%v",
				quotationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotations/{id}/send - Quotation sent: quotation_id=%d, invoice=%s, user_id=%d",
		quotationID, result.InvoiceNumber, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

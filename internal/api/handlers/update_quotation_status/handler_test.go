package update_quotation_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/service/quotations"
	"github.com/m04kA/SMC-TourService/internal/service/quotations/models"
	"github.com/m04kA/SMC-TourService/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.QuotationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.QuotationResponse{ID: id, Status: req.Status}, nil
}

func do(svc *fakeService, id, body string) int {
	h := NewHandler(svc, logger.NewNop())
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/quotations/"+id+"/status", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"quotationId": id})
	r = r.WithContext(middleware.WithSession(r.Context(), &domain.Session{UserID: 1, Role: domain.RoleAdmin}))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w.Code
}

func TestHandle(t *testing.T) {
	body := `{"status":"accepted"}`

	assert.Equal(t, http.StatusOK, do(&fakeService{}, "3", body))
	assert.Equal(t, http.StatusBadRequest, do(&fakeService{}, "x", body))
	assert.Equal(t, http.StatusBadRequest, do(&fakeService{}, "3", `{"status":"archived"}`))
	assert.Equal(t, http.StatusNotFound, do(&fakeService{err: quotations.ErrQuotationNotFound}, "3", body))
	assert.Equal(t, http.StatusConflict, do(&fakeService{err: quotations.ErrInvalidTransition}, "3", body))
	assert.Equal(t, http.StatusInternalServerError, do(&fakeService{err: errors.New("db")}, "3", body))
}

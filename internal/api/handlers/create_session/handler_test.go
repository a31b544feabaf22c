package create_session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/service/sessions"
	"github.com/m04kA/SMC-TourService/internal/service/sessions/models"
	"github.com/m04kA/SMC-TourService/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) Login(_ context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{Token: "tok", UserID: 1, Email: req.Email, Role: "admin"}, nil
}

func do(svc *fakeService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	r := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	body := `{"email":"admin@tours.lk","password":"s3cret"}`

	w := do(&fakeService{}, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)

	assert.Equal(t, http.StatusUnauthorized, do(&fakeService{err: sessions.ErrInvalidCredentials}, body).Code)
	assert.Equal(t, http.StatusForbidden, do(&fakeService{err: sessions.ErrUserInactive}, body).Code)
	assert.Equal(t, http.StatusInternalServerError, do(&fakeService{err: errors.New("redis down")}, body).Code)
	assert.Equal(t, http.StatusBadRequest, do(&fakeService{}, `{"email":"not-an-email","password":"x"}`).Code)
}

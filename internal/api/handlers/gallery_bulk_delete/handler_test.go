package gallery_bulk_delete

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	galleryDelete "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_delete"
	"github.com/m04kA/SMC-TourService/pkg/logger"
)

// fakeUseCase считает чётные ID удалёнными, нечётные нет
// При отменённом контексте ни один ID не удаляется
type fakeUseCase struct{}

func (fakeUseCase) Execute(ctx context.Context, req *galleryDelete.Request) (*galleryDelete.Response, error) {
	resp := &galleryDelete.Response{}
	for _, id := range req.IDs {
		if ctx.Err() == nil && id%2 == 0 {
			resp.SuccessCount++
		} else {
			resp.FailureCount++
		}
	}
	return resp, nil
}

func do(body string) *httptest.ResponseRecorder {
	h := NewHandler(fakeUseCase{}, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/gallery/bulk-delete", strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	w := do(`{"ids":[2,4]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(`{"ids":[2,3,4]}`)
	require.Equal(t, http.StatusMultiStatus, w.Code)
	var resp BulkResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, BulkResultResponse{SuccessCount: 2, FailureCount: 1}, resp)

	assert.Equal(t, http.StatusBadRequest, do(`{"ids":[]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(`{"ids":[0]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(`{`).Code)
}

func TestHandle_ClientGoneStillCompletes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewHandler(fakeUseCase{}, logger.NewNop())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/bulk-delete", strings.NewReader(`{"ids":[2,4,6]}`)).WithContext(ctx)
	h.Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp BulkResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, BulkResultResponse{SuccessCount: 3}, resp)
}

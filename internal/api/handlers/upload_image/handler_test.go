package upload_image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/integrations/cloudinary"
	"github.com/m04kA/SMC-TourService/pkg/logger"
)

type fakeHost struct {
	gotFolder string
	gotData   string
	err       error
}

func (f *fakeHost) Upload(_ context.Context, file io.Reader, category string) (*cloudinary.UploadedImage, error) {
	data, _ := io.ReadAll(file)
	f.gotFolder = category
	f.gotData = string(data)
	if f.err != nil {
		return nil, f.err
	}
	return &cloudinary.UploadedImage{
		URL:      fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/%s/x.jpg", category),
		PublicID: "gallery/" + category + "/x",
	}, nil
}

func newRequest(t *testing.T, field, folder, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if folder != "" {
		require.NoError(t, mw.WriteField(formFieldFolder, folder))
	}
	part, err := mw.CreateFormFile(field, "x.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestHandle_Success(t *testing.T) {
	host := &fakeHost{}
	h := NewHandler(host, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, newRequest(t, formFieldImage, "tours", "jpeg-bytes"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/tours/x.jpg", resp.URL)
	assert.Equal(t, "tours", host.gotFolder)
	assert.Equal(t, "jpeg-bytes", host.gotData)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
		err  error
		want int
	}{
		{"not multipart", func(*testing.T) *http.Request {
			return httptest.NewRequest(http.MethodPost, "/api/v1/uploads", bytes.NewBufferString("{}"))
		}, nil, http.StatusBadRequest},
		{"wrong field", func(t *testing.T) *http.Request {
			return newRequest(t, "file", "", "data")
		}, nil, http.StatusBadRequest},
		{"host failed", func(t *testing.T) *http.Request {
			return newRequest(t, formFieldImage, "", "data")
		}, cloudinary.ErrUpload, http.StatusBadGateway},
		{"host unexpected error", func(t *testing.T) *http.Request {
			return newRequest(t, formFieldImage, "", "data")
		}, errors.New("boom"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeHost{err: tt.err}, logger.NewNop())
			w := httptest.NewRecorder()
			h.Handle(w, tt.req(t))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

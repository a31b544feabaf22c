package gallery_bulk_upload

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/integrations/cloudinary"
	"github.com/m04kA/SMC-TourService/pkg/logger"
)

type fakeHost struct {
	failOn  map[string]bool
	uploads []string
}

func (f *fakeHost) Upload(_ context.Context, file io.Reader, category string) (*cloudinary.UploadedImage, error) {
	data, _ := io.ReadAll(file)
	content := string(data)
	if f.failOn[content] {
		return nil, cloudinary.ErrUpload
	}
	f.uploads = append(f.uploads, content)
	return &cloudinary.UploadedImage{URL: "https://cdn/" + content, PublicID: category + "/" + content}, nil
}

type fakeRepo struct {
	saved []*domain.GalleryImage
	err   error
}

func (f *fakeRepo) Create(_ context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	img.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, img)
	return img, nil
}

type fakeObserver struct {
	operation         string
	succeeded, failed int
}

func (f *fakeObserver) ObserveBulk(operation string, succeeded, failed int) {
	f.operation, f.succeeded, f.failed = operation, succeeded, failed
}

func file(name, content string) File {
	return File{
		Filename: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestExecute_PartialFailure(t *testing.T) {
	host := &fakeHost{failOn: map[string]bool{"c": true}}
	repo := &fakeRepo{}
	obs := &fakeObserver{}
	uc := NewUseCase(repo, host, obs, logger.NewNop())

	broken := File{Filename: "e.jpg", Open: func() (io.ReadCloser, error) { return nil, errors.New("truncated") }}

	resp, err := uc.Execute(context.Background(), &Request{
		Category: "beaches",
		Files:    []File{file("a.jpg", "a"), file("b.jpg", "b"), file("c.jpg", "c"), file("d.png", "d"), broken},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.SuccessCount)
	assert.Equal(t, 2, resp.FailureCount)
	assert.Equal(t, []string{"a", "b", "d"}, host.uploads)

	require.Len(t, repo.saved, 3)
	assert.Equal(t, "a", repo.saved[0].Title)
	assert.Equal(t, "beaches", repo.saved[0].Category)
	assert.Equal(t, "beaches/a", repo.saved[0].PublicID)

	assert.Equal(t, fakeObserver{operation: "gallery_upload", succeeded: 3, failed: 2}, *obs)
}

func TestExecute_SaveFailureCounted(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("db down")}, &fakeHost{}, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Category: "hotels",
		Title:    "Lobby",
		Files:    []File{file("a.jpg", "a"), file("b.jpg", "b")},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.SuccessCount)
	assert.Equal(t, 2, resp.FailureCount)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeHost{}, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Category: " ", Files: []File{file("a.jpg", "a")}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Category: "beaches"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooMany := make([]File, domain.MaxBulkItems+1)
	_, err = uc.Execute(context.Background(), &Request{Category: "beaches", Files: tooMany})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "sigiriya-rock", titleFromFilename("sigiriya-rock.jpg"))
	assert.Equal(t, ".hidden", titleFromFilename(".hidden"))
	assert.Equal(t, "noext", titleFromFilename("noext"))
}

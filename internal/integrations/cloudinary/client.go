package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadedImage результат загрузки изображения
type UploadedImage struct {
	URL      string
	PublicID string
}

// Client клиент хостинга изображений
type Client struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает клиент по учётным данным аккаунта
func NewClient(cloudName, apiKey, apiSecret, folder string, log Logger) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: failed to init client: %w", err)
	}
	cld.Config.URL.Secure = true

	return &Client{cld: cld, folder: folder, log: log}, nil
}

// Upload загружает изображение в папку folder/category
func (c *Client) Upload(ctx context.Context, file io.Reader, category string) (*UploadedImage, error) {
	folder := c.folder
	if category != "" {
		folder = folder + "/" + category
	}

	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	// API возвращает ошибку в теле ответа, а не через err
	if result.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrUpload, result.Error.Message)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("%w: no public ID returned", ErrUpload)
	}

	c.log.Info("Cloudinary: uploaded image public_id=%s", result.PublicID)
	return &UploadedImage{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Destroy удаляет изображение по public ID
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	result, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDestroy, err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("%w: %s", ErrDestroy, result.Error.Message)
	}

	switch result.Result {
	case "ok":
		c.log.Info("Cloudinary: destroyed image public_id=%s", publicID)
		return nil
	case "not found":
		return fmt.Errorf("%w: public_id=%s", ErrNotFound, publicID)
	default:
		return fmt.Errorf("%w: unexpected result %q", ErrDestroy, result.Result)
	}
}

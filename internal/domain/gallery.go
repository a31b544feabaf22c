package domain

import "time"

// GalleryImage represents an image hosted on the image CDN
type GalleryImage struct {
	ID        int64
	Title     string
	Category  string
	URL       string
	PublicID  string // идентификатор на стороне хостинга изображений
	CreatedAt time.Time
}

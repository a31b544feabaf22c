package gallery_bulk_upload

import "io"

// File один файл из формы загрузки
type File struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// Request модель запроса на пакетную загрузку
type Request struct {
	Category string
	Title    string // общий заголовок, если пусто - имя файла
	Files    []File
}

// Response итог загрузки: только счётчики, детали по файлам не возвращаются
type Response struct {
	SuccessCount int
	FailureCount int
}

package gallery_bulk_delete

// Request модель запроса на пакетное удаление
type Request struct {
	IDs []int64
}

// Response итог удаления
type Response struct {
	SuccessCount int
	FailureCount int
}

package gcal

import "errors"

var (
	// ErrInternal возвращается при ошибках выполнения запроса к коллаборатору
	ErrInternal = errors.New("gcal.client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе коллаборатора
	ErrInvalidResponse = errors.New("gcal.client: invalid response")

	// ErrUnavailable возвращается, когда коллаборатор синхронизации недоступен
	ErrUnavailable = errors.New("gcal.client: calendar collaborator unavailable")
)

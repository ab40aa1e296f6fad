package submission

import "errors"

var (
	// ErrSubmissionNotFound возвращается, когда отправка серии не найдена
	ErrSubmissionNotFound = errors.New("submission.repository: submission not found")

	// ErrItemNotFound возвращается, когда заявка серии не найдена
	ErrItemNotFound = errors.New("submission.repository: item not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("submission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("submission.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("submission.repository: failed to scan row")
)

package servicerecord

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrServiceNotFound возвращается, когда запись об услуге не найдена
	ErrServiceNotFound = errors.New("servicerecord.repository: service record not found")

	// ErrReferenceNotFound возвращается, когда нарушен внешний ключ
	// (автомобиль или пакет не существует)
	ErrReferenceNotFound = errors.New("servicerecord.repository: referenced row not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("servicerecord.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("servicerecord.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("servicerecord.repository: failed to scan row")
)

const foreignKeyViolationCode = "23503"

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolationCode
}

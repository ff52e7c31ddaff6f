package report

import "errors"

var (
	// ErrBillNotFound возвращается, когда платеж не образует полную цепочку
	// платеж-услуга-автомобиль-пакет
	ErrBillNotFound = errors.New("report.repository: bill not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("report.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("report.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("report.repository: failed to scan row")
)

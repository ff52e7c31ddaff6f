package packages

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет услуг не найден
	ErrPackageNotFound = errors.New("packages.repository: package not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("packages.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("packages.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("packages.repository: failed to scan row")
)

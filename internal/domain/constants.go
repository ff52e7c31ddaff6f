package domain

// Форматы дат, используемые в API и отчетах
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения учетных данных
const (
	MinPasswordLength = 6
)

// Лимиты отчетов
const (
	RecentServicesLimit = 10
)

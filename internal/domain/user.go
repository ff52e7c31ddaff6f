package domain

import "time"

// User учетная запись сотрудника автомойки
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

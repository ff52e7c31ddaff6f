package domain

import "time"

// Session серверная сессия, привязанная к cookie
type Session struct {
	ID        string
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// IsExpired возвращает true, если сессия истекла на момент now
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

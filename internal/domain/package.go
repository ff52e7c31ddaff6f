package domain

import "time"

// Package пакет услуг мойки с фиксированной ценой
type Package struct {
	PackageNumber      int64
	PackageName        string
	PackageDescription string
	PackagePrice       float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

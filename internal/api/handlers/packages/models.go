package packages

import (
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	"github.com/m04kA/SMC-CarWashService/internal/validation"
)

// PackageRequest HTTP request model, общий для создания и обновления
type PackageRequest struct {
	PackageName        string  `json:"packageName"`
	PackageDescription string  `json:"packageDescription"`
	PackagePrice       float64 `json:"packagePrice"`
}

// Validate проверяет поля запроса
func (r *PackageRequest) Validate() validation.Errors {
	var errs validation.Errors
	if !validation.NonEmpty(r.PackageName) {
		errs.Add("packageName", "Package name is required")
	}
	if !validation.NonEmpty(r.PackageDescription) {
		errs.Add("packageDescription", "Package description is required")
	}
	if r.PackagePrice < 0 {
		errs.Add("packagePrice", "Package price must be a positive number")
	}
	return errs
}

// ToDomain конвертирует запрос в доменную модель
func (r *PackageRequest) ToDomain(packageNumber int64) *domain.Package {
	return &domain.Package{
		PackageNumber:      packageNumber,
		PackageName:        r.PackageName,
		PackageDescription: r.PackageDescription,
		PackagePrice:       r.PackagePrice,
	}
}

// PackageResponse HTTP response model
type PackageResponse struct {
	PackageNumber      int64   `json:"packageNumber"`
	PackageName        string  `json:"packageName"`
	PackageDescription string  `json:"packageDescription"`
	PackagePrice       float64 `json:"packagePrice"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(pkg *domain.Package) *PackageResponse {
	return &PackageResponse{
		PackageNumber:      pkg.PackageNumber,
		PackageName:        pkg.PackageName,
		PackageDescription: pkg.PackageDescription,
		PackagePrice:       pkg.PackagePrice,
		CreatedAt:          pkg.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          pkg.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(pkgs []*domain.Package) []*PackageResponse {
	out := make([]*PackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, FromDomain(pkg))
	}
	return out
}

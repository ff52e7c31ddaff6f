package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	packageRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/packages"
)

// Service сервис для работы с пакетами услуг
type Service struct {
	packageRepo PackageRepository
	serviceRepo ServiceRecordRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пакетов услуг
func NewService(packageRepo PackageRepository, serviceRepo ServiceRecordRepository, logger Logger) *Service {
	return &Service{
		packageRepo: packageRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все пакеты услуг, упорядоченные по номеру
func (s *Service) List(ctx context.Context) ([]*domain.Package, error) {
	pkgs, err := s.packageRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d packages", len(pkgs))
	return pkgs, nil
}

// Get возвращает пакет услуг по номеру
func (s *Service) Get(ctx context.Context, packageNumber int64) (*domain.Package, error) {
	pkg, err := s.packageRepo.GetByNumber(ctx, packageNumber)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("Get: package %d not found", packageNumber)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Get: repository error for package %d: %v", packageNumber, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return pkg, nil
}

// Create создает новый пакет услуг, номер присваивается базой данных
func (s *Service) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	created, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		s.logger.Error("Create: repository error for package %q: %v", pkg.PackageName, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: package %d (%q) created", created.PackageNumber, created.PackageName)
	return created, nil
}

// Update обновляет все изменяемые поля пакета услуг
func (s *Service) Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("Update: package %d not found", pkg.PackageNumber)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Update: repository error for package %d: %v", pkg.PackageNumber, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.packageRepo.GetByNumber(ctx, pkg.PackageNumber)
	if err != nil {
		s.logger.Error("Update: failed to re-read package %d: %v", pkg.PackageNumber, err)
		return nil, fmt.Errorf("%w: Update - re-read package: %v", ErrInternal, err)
	}

	s.logger.Info("Update: package %d updated", pkg.PackageNumber)
	return updated, nil
}

// Delete удаляет пакет услуг
// Пакет, на который ссылаются записи об услугах, удалить нельзя
func (s *Service) Delete(ctx context.Context, packageNumber int64) error {
	count, err := s.serviceRepo.CountByPackage(ctx, packageNumber)
	if err != nil {
		s.logger.Error("Delete: failed to count services for package %d: %v", packageNumber, err)
		return fmt.Errorf("%w: Delete - count dependents: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: package %d has %d service records, refusing to delete", packageNumber, count)
		return ErrPackageHasServices
	}

	if err := s.packageRepo.Delete(ctx, packageNumber); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("Delete: package %d not found", packageNumber)
			return ErrPackageNotFound
		}
		s.logger.Error("Delete: repository error for package %d: %v", packageNumber, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: package %d deleted", packageNumber)
	return nil
}

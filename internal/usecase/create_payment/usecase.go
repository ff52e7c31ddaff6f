package create_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/payment"
)

// UseCase use case регистрации платежа за услугу
type UseCase struct {
	paymentRepo PaymentRepository
	serviceRepo ServiceRecordRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	serviceRepo ServiceRecordRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute регистрирует платеж за услугу
// Проверка существования услуги и отсутствия повторной оплаты выполняется
// в сериализуемой транзакции; уникальный индекс по номеру услуги
// отсекает дубликат, успевший проскочить между проверкой и вставкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.PaymentDetails, error) {
	uc.logger.Info("CreatePayment: record=%d, amount=%.2f, date=%s",
		req.RecordNumber, req.AmountPaid, req.PaymentDate.Format(domain.DateFormat))

	var paymentNumber int64

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		recExists, err := uc.serviceRepo.Exists(txCtx, req.RecordNumber)
		if err != nil {
			uc.logger.Error("CreatePayment: failed to check service record %d: %v", req.RecordNumber, err)
			return fmt.Errorf("%w: failed to check service record: %v", ErrInternal, err)
		}
		if !recExists {
			uc.logger.Warn("CreatePayment: service record %d not found", req.RecordNumber)
			return ErrServiceNotFound
		}

		paid, err := uc.paymentRepo.ExistsByRecord(txCtx, req.RecordNumber)
		if err != nil {
			uc.logger.Error("CreatePayment: failed to check existing payment for record %d: %v", req.RecordNumber, err)
			return fmt.Errorf("%w: failed to check existing payment: %v", ErrInternal, err)
		}
		if paid {
			uc.logger.Warn("CreatePayment: record %d already paid", req.RecordNumber)
			return ErrAlreadyPaid
		}

		created, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			AmountPaid:   req.AmountPaid,
			PaymentDate:  req.PaymentDate,
			RecordNumber: req.RecordNumber,
		})
		if err != nil {
			switch {
			case errors.Is(err, paymentRepo.ErrPaymentAlreadyExists):
				uc.logger.Warn("CreatePayment: duplicate payment for record %d rejected by unique index", req.RecordNumber)
				return ErrAlreadyPaid
			case errors.Is(err, paymentRepo.ErrReferenceNotFound):
				uc.logger.Warn("CreatePayment: service record %d vanished before insert", req.RecordNumber)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreatePayment: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		paymentNumber = created.PaymentNumber
		return nil
	})
	if err != nil {
		return nil, err
	}

	details, err := uc.paymentRepo.GetDetails(ctx, paymentNumber)
	if err != nil {
		uc.logger.Error("CreatePayment: failed to read created payment %d: %v", paymentNumber, err)
		return nil, fmt.Errorf("%w: failed to read created payment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePayment: payment %d created for record %d", paymentNumber, req.RecordNumber)
	return details, nil
}

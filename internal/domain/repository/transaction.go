package repository

import "context"

// UnitOfWork - репозитории, работающие в одной транзакции
type UnitOfWork interface {
	Coordinates() CoordinateRepository
	CoordinateTypes() CoordinateTypeRepository
	GeographyObjects() GeographyObjectRepository
	GeographyObjectTypes() GeographyObjectTypeRepository
	GeographyObjectCoordinates() GeographyObjectCoordinateRepository
}

// TxManager выполняет fn в транзакции. Ошибка или паника в fn откатывают транзакцию,
// успешный возврат фиксирует её.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}

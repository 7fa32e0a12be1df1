package closures

import "errors"

var (
	// ErrDuplicateClosure возвращается, когда закрытие на пару
	// (дата, слот-или-весь-день) уже зарегистрировано
	ErrDuplicateClosure = errors.New("closure already exists")

	// ErrClosureNotFound возвращается, когда закрытие не найдено
	ErrClosureNotFound = errors.New("closure not found")

	// ErrInvalidSlot возвращается, когда слот не входит в каталог
	ErrInvalidSlot = errors.New("slot is not in the catalog")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("closures service: internal error")
)

package create_reservation

import "errors"

var (
	// ErrInvalidSlot возвращается, когда слот не входит в каталог
	ErrInvalidSlot = errors.New("create_reservation: slot is not in the catalog")

	// ErrClosed возвращается, когда дата или пара (дата, слот) закрыты
	// для записи административно
	ErrClosed = errors.New("create_reservation: date or slot is closed")

	// ErrSlotTaken возвращается, когда слот уже удерживается активным
	// бронированием (конфликт)
	ErrSlotTaken = errors.New("create_reservation: slot already reserved")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

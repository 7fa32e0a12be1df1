package estimates

import "errors"

var (
	// ErrRepairNotFound возвращается, когда пара (модель, вид ремонта)
	// отсутствует в прайс-листе
	ErrRepairNotFound = errors.New("repair not found in pricelist")

	// ErrUnsupported возвращается для неподдерживаемых позиций
	// (UNSUPPORTED / SOLD OUT в прайс-листе)
	ErrUnsupported = errors.New("repair is not supported")

	// ErrInvalidProfitRate возвращается, когда маржа в прайс-листе >= 1
	// и базовая цена не вычислима
	ErrInvalidProfitRate = errors.New("profit rate must be less than 1")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("estimates service: internal error")
)

package create_reservation

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date  time.Time        // Дата бронирования (без времени)
	Time  types.TimeString // Слот (например, "10:00")
	Name  string           // Имя клиента
	Phone string           // Телефон клиента
	Menu  string           // Вид услуги (тип ремонта)
	Memo  *string          // Комментарий (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string           // UUID созданного бронирования
	Date      time.Time        // Дата бронирования
	Time      types.TimeString // Слот
	Name      string           // Имя клиента
	Phone     string           // Телефон клиента
	Menu      string           // Вид услуги
	Memo      *string          // Комментарий
	CreatedAt time.Time        // Время создания
	Status    string           // Статус бронирования
}

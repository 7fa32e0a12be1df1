package storage

import (
	"context"
	"fmt"

	"github.com/dmkaz/RSC-BookingService/pkg/dbmetrics"
)

// schemaSQL схема БД, применяется при старте сервиса
//
// Частичный уникальный индекс reservations_active_slot_uniq — инвариант
// "не более одного активного бронирования на (date, time)" на уровне
// хранилища: при гонке двух вставок вторая атомарно падает с 23505
const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservations (
	id UUID PRIMARY KEY,
	date DATE NOT NULL,
	time VARCHAR(5) NOT NULL,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	menu TEXT NOT NULL,
	memo TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	status TEXT NOT NULL DEFAULT 'reserved'
);

CREATE UNIQUE INDEX IF NOT EXISTS reservations_active_slot_uniq
	ON reservations (date, time) WHERE status = 'reserved';

CREATE INDEX IF NOT EXISTS reservations_date_idx ON reservations (date);

CREATE TABLE IF NOT EXISTS closures (
	id BIGSERIAL PRIMARY KEY,
	date DATE NOT NULL,
	time VARCHAR(5),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS closures_date_time_uniq
	ON closures (date, COALESCE(time, ''));
`

// Migrate применяет схему БД
func Migrate(ctx context.Context, db dbmetrics.DBExecutor) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("storage: failed to apply schema: %w", err)
	}
	return nil
}

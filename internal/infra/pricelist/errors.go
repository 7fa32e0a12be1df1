package pricelist

import "errors"

var (
	// ErrOpenFile возвращается, когда CSV файл прайс-листа недоступен
	ErrOpenFile = errors.New("pricelist.reader: failed to open file")

	// ErrReadFile возвращается при ошибке чтения CSV
	ErrReadFile = errors.New("pricelist.reader: failed to read file")

	// ErrBadHeader возвращается, когда в CSV нет обязательных колонок
	ErrBadHeader = errors.New("pricelist.reader: missing required column")
)

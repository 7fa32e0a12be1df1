package pricelist

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
)

// Маркеры неподдерживаемых позиций в ячейках цен
const (
	markerUnsupported = "UNSUPPORTED"
	markerSoldOut     = "SOLD OUT"
)

// Обязательные колонки прайс-листа
var priceColumns = []string{"model", "repair_type", "cost", "shipping", "profit_rate"}

// Обязательные колонки файла опций
var optionColumns = []string{"name", "price"}

// Reader читает прайс-лист и опции из CSV файлов
//
// Файлы перечитываются на каждый вызов: прайс правится вручную на
// работающем сервисе, кэшированного устаревшего представления нет
type Reader struct {
	pricesPath  string
	optionsPath string
}

// NewReader создает reader для указанных CSV файлов
func NewReader(pricesPath, optionsPath string) *Reader {
	return &Reader{
		pricesPath:  pricesPath,
		optionsPath: optionsPath,
	}
}

// LoadPrices читает все строки прайс-листа
func (r *Reader) LoadPrices() ([]domain.PriceRow, error) {
	records, index, err := readCSV(r.pricesPath, priceColumns)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.PriceRow, 0, len(records))
	for _, rec := range records {
		row := domain.PriceRow{
			Model:      strings.TrimSpace(rec[index["model"]]),
			RepairType: strings.TrimSpace(rec[index["repair_type"]]),
			Supported:  true,
		}

		cost, okCost := parsePrice(rec[index["cost"]])
		shipping, okShipping := parsePrice(rec[index["shipping"]])
		rate, okRate := parsePrice(rec[index["profit_rate"]])

		// Строка с маркером или нечисловой ценой считается неподдерживаемой
		if !okCost || !okShipping || !okRate {
			row.Supported = false
		} else {
			row.Cost = cost
			row.Shipping = shipping
			row.ProfitRate = rate
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// LoadOptions читает все опции
func (r *Reader) LoadOptions() ([]domain.Option, error) {
	records, index, err := readCSV(r.optionsPath, optionColumns)
	if err != nil {
		return nil, err
	}

	options := make([]domain.Option, 0, len(records))
	for _, rec := range records {
		price, ok := parsePrice(rec[index["price"]])
		if !ok {
			// Опция без валидной цены пропускается
			continue
		}
		options = append(options, domain.Option{
			Name:  strings.TrimSpace(rec[index["name"]]),
			Price: int(price),
		})
	}

	return options, nil
}

// readCSV читает файл и строит индекс обязательных колонок по заголовку
func readCSV(path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%w: %s: empty file", ErrReadFile, path)
	}

	header := all[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}

	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("%w: %s: %q", ErrBadHeader, path, col)
		}
	}

	// Строки короче заголовка отбрасываются
	records := make([][]string, 0, len(all)-1)
	for _, rec := range all[1:] {
		if len(rec) >= len(header) {
			records = append(records, rec)
		}
	}

	return records, index, nil
}

// parsePrice парсит ценовую ячейку
// Допускает разделители тысяч ("4,152"); для маркеров UNSUPPORTED и
// SOLD OUT (и любых нечисловых значений) возвращает ok = false
func parsePrice(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, markerUnsupported) || strings.EqualFold(s, markerSoldOut) {
		return 0, false
	}

	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

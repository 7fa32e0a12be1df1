package estimates

import (
	"fmt"
	"sort"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
)

// Service расчёт стоимости ремонта по прайс-листу
// Побочных эффектов и состояния нет: каждая операция заново читает прайс
type Service struct {
	reader PricelistReader
	logger Logger
}

// NewService создает новый экземпляр сервиса расчёта стоимости
func NewService(reader PricelistReader, logger Logger) *Service {
	return &Service{
		reader: reader,
		logger: logger,
	}
}

// Models возвращает отсортированный список моделей без дубликатов
func (s *Service) Models() ([]string, error) {
	rows, err := s.reader.LoadPrices()
	if err != nil {
		s.logger.Error("Models: failed to load pricelist: %v", err)
		return nil, fmt.Errorf("%w: Models - failed to load pricelist: %v", ErrInternal, err)
	}

	seen := make(map[string]struct{}, len(rows))
	models := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.Model]; ok {
			continue
		}
		seen[row.Model] = struct{}{}
		models = append(models, row.Model)
	}

	sort.Strings(models)
	return models, nil
}

// Repairs возвращает виды ремонта для модели в порядке прайс-листа
// Для неизвестной модели список пуст
func (s *Service) Repairs(model string) ([]string, error) {
	if model == "" {
		return nil, fmt.Errorf("%w: model is required", ErrInvalidInput)
	}

	rows, err := s.reader.LoadPrices()
	if err != nil {
		s.logger.Error("Repairs: failed to load pricelist: %v", err)
		return nil, fmt.Errorf("%w: Repairs - failed to load pricelist: %v", ErrInternal, err)
	}

	seen := make(map[string]struct{})
	repairs := make([]string, 0)
	for _, row := range rows {
		if row.Model != model {
			continue
		}
		if _, ok := seen[row.RepairType]; ok {
			continue
		}
		seen[row.RepairType] = struct{}{}
		repairs = append(repairs, row.RepairType)
	}

	return repairs, nil
}

// Options возвращает все опции прайс-листа
func (s *Service) Options() ([]domain.Option, error) {
	options, err := s.reader.LoadOptions()
	if err != nil {
		s.logger.Error("Options: failed to load options: %v", err)
		return nil, fmt.Errorf("%w: Options - failed to load options: %v", ErrInternal, err)
	}
	return options, nil
}

// Estimate вычисляет стоимость ремонта
// Базовая цена: int((cost + shipping) / (1 - profitRate)); выбранные
// опции прибавляются к итогу, неизвестные имена опций пропускаются
func (s *Service) Estimate(model, repairType string, optionNames []string) (*domain.Estimate, error) {
	s.logger.Info("Estimate: model=%s, repair=%s, options=%d", model, repairType, len(optionNames))

	if model == "" || repairType == "" {
		return nil, fmt.Errorf("%w: model and repair_type are required", ErrInvalidInput)
	}

	rows, err := s.reader.LoadPrices()
	if err != nil {
		s.logger.Error("Estimate: failed to load pricelist: %v", err)
		return nil, fmt.Errorf("%w: Estimate - failed to load pricelist: %v", ErrInternal, err)
	}

	row, ok := findRow(rows, model, repairType)
	if !ok {
		s.logger.Warn("Estimate: repair not found: model=%s, repair=%s", model, repairType)
		return nil, ErrRepairNotFound
	}

	if !row.Supported {
		s.logger.Warn("Estimate: repair unsupported: model=%s, repair=%s", model, repairType)
		return nil, ErrUnsupported
	}

	if row.ProfitRate >= 1 {
		s.logger.Warn("Estimate: invalid profit rate %.2f for model=%s, repair=%s",
			row.ProfitRate, model, repairType)
		return nil, ErrInvalidProfitRate
	}

	basePrice := int((row.Cost + row.Shipping) / (1 - row.ProfitRate))

	selected, optionsTotal, err := s.resolveOptions(optionNames)
	if err != nil {
		return nil, err
	}

	estimate := &domain.Estimate{
		Model:      model,
		RepairType: repairType,
		BasePrice:  basePrice,
		Options:    selected,
		Total:      basePrice + optionsTotal,
	}

	s.logger.Info("Estimate: model=%s, repair=%s, base=%d, total=%d",
		model, repairType, estimate.BasePrice, estimate.Total)

	return estimate, nil
}

// resolveOptions сопоставляет имена опций с прайс-листом
func (s *Service) resolveOptions(names []string) ([]domain.SelectedOption, int, error) {
	selected := make([]domain.SelectedOption, 0, len(names))
	if len(names) == 0 {
		return selected, 0, nil
	}

	options, err := s.reader.LoadOptions()
	if err != nil {
		s.logger.Error("Estimate: failed to load options: %v", err)
		return nil, 0, fmt.Errorf("%w: Estimate - failed to load options: %v", ErrInternal, err)
	}

	byName := make(map[string]domain.Option, len(options))
	for _, opt := range options {
		byName[opt.Name] = opt
	}

	total := 0
	for _, name := range names {
		opt, ok := byName[name]
		if !ok {
			// Неизвестная опция не ошибка: пропускаем
			continue
		}
		selected = append(selected, domain.SelectedOption{Name: opt.Name, Price: opt.Price})
		total += opt.Price
	}

	return selected, total, nil
}

// findRow ищет строку прайс-листа по паре (модель, вид ремонта)
func findRow(rows []domain.PriceRow, model, repairType string) (domain.PriceRow, bool) {
	for _, row := range rows {
		if row.Model == model && row.RepairType == repairType {
			return row, true
		}
	}
	return domain.PriceRow{}, false
}

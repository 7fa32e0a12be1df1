package domain

// PriceRow строка прайс-листа: себестоимость и маржа для пары
// (модель устройства, вид ремонта)
type PriceRow struct {
	Model      string
	RepairType string
	Cost       float64
	Shipping   float64
	ProfitRate float64 // доля от итоговой цены, строго меньше 1
	Supported  bool    // false для позиций UNSUPPORTED / SOLD OUT
}

// Option платная опция ремонта из прайс-листа
type Option struct {
	Name  string
	Price int
}

// SelectedOption опция, применённая к расчёту
type SelectedOption struct {
	Name  string
	Price int
}

// Estimate результат расчёта стоимости ремонта
// Базовая цена: int((cost + shipping) / (1 - profitRate))
type Estimate struct {
	Model      string
	RepairType string
	BasePrice  int
	Options    []SelectedOption
	Total      int
}

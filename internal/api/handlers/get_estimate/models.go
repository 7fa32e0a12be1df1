package get_estimate

import "github.com/dmkaz/RSC-BookingService/internal/domain"

// OptionResponse HTTP модель применённой опции
type OptionResponse struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// EstimateResponse HTTP response model
type EstimateResponse struct {
	Model      string           `json:"model"`
	RepairType string           `json:"repairType"`
	BasePrice  int              `json:"basePrice"`
	Options    []OptionResponse `json:"options"`
	Total      int              `json:"total"`
}

// FromDomainEstimate конвертирует доменную модель в HTTP response
func FromDomainEstimate(e *domain.Estimate) *EstimateResponse {
	options := make([]OptionResponse, len(e.Options))
	for i, opt := range e.Options {
		options[i] = OptionResponse{Name: opt.Name, Price: opt.Price}
	}
	return &EstimateResponse{
		Model:      e.Model,
		RepairType: e.RepairType,
		BasePrice:  e.BasePrice,
		Options:    options,
		Total:      e.Total,
	}
}

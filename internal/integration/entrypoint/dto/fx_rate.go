package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/fxrate"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateFxRateRequest represents the request body for entering an exchange rate.
// Rate is scaled by 100: 110 means 1.10 units of currency2 per currency1.
type CreateFxRateRequest struct {
	PeriodID  string `json:"period_id" binding:"required,uuid"`
	Currency1 string `json:"currency1" binding:"required,len=3"`
	Currency2 string `json:"currency2" binding:"required,len=3"`
	Rate      int64  `json:"rate" binding:"required"`
}

// FxRateResponse represents a stored exchange rate in API responses.
type FxRateResponse struct {
	ID        string    `json:"id"`
	PeriodID  string    `json:"period_id"`
	Currency1 string    `json:"currency1"`
	Currency2 string    `json:"currency2"`
	Rate      int64     `json:"rate"`
	StartDate string    `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
}

// FxRateListResponse represents the response for listing exchange rates.
type FxRateListResponse struct {
	Rates []FxRateResponse `json:"rates"`
}

// RateResponse represents a resolved conversion rate.
type RateResponse struct {
	PeriodID string `json:"period_id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Rate     string `json:"rate"`
	Scaled   string `json:"scaled"`
}

// ToFxRateResponse converts a domain FxRate entity to an FxRateResponse DTO.
func ToFxRateResponse(r *entity.FxRate, loc *time.Location) FxRateResponse {
	return FxRateResponse{
		ID:        r.ID.String(),
		PeriodID:  r.PeriodID.String(),
		Currency1: r.Currency1,
		Currency2: r.Currency2,
		Rate:      r.Rate,
		StartDate: FormatDate(r.StartDate, loc),
		CreatedAt: r.CreatedAt,
	}
}

// ToFxRateListResponse converts rates to an FxRateListResponse DTO.
func ToFxRateListResponse(rates []*entity.FxRate, loc *time.Location) FxRateListResponse {
	out := make([]FxRateResponse, len(rates))
	for i, r := range rates {
		out[i] = ToFxRateResponse(r, loc)
	}
	return FxRateListResponse{Rates: out}
}

// ToRateResponse converts a rate lookup to its DTO.
func ToRateResponse(periodID string, output *fxrate.GetRateOutput) RateResponse {
	return RateResponse{
		PeriodID: periodID,
		From:     output.From,
		To:       output.To,
		Rate:     output.Rate.StringFixed(2),
		Scaled:   output.Scaled.StringFixed(2),
	}
}

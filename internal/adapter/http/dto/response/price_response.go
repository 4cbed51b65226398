package response

import "aurora_motors/internal/domain/entities"

type PriceQuoteResponse struct {
	Base   float64 `json:"base"`
	Extras float64 `json:"extras"`
	Total  float64 `json:"total"`
}

func FromPriceQuote(q entities.PriceQuote) PriceQuoteResponse {
	return PriceQuoteResponse{Base: q.Base, Extras: q.Extras, Total: q.Total}
}

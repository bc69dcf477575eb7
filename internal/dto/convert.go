package dto

import "github.com/shopspring/decimal"

// ConvertRequest defines the query parameters of a conversion.
type ConvertRequest struct {
	Amount decimal.Decimal `form:"amount" binding:"required,nonnegdecimal" example:"100"`
	From   string          `form:"from" binding:"required,min=2,max=5" example:"EUR"`
	To     string          `form:"to" binding:"required,min=2,max=5" example:"USD"`
}

// ConvertResponse defines the result of a conversion, rounded to 6 fractional
// digits (round half to even). Display rounding is the caller's concern.
type ConvertResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

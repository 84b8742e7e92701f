package domain

import "github.com/shopspring/decimal"

// Plan is a subscription tier shown on the pricing page.
type Plan struct {
	ID       string          `json:"id"       yaml:"id"`
	Name     string          `json:"name"     yaml:"name"`
	UserType UserType        `json:"userType" yaml:"userType"`
	Price    decimal.Decimal `json:"price"    yaml:"price"`
	Interval string          `json:"interval" yaml:"interval"`
	// PriceID is the payment provider's price identifier; empty for free plans.
	PriceID     string   `json:"priceId,omitempty" yaml:"priceId"`
	Description string   `json:"description"       yaml:"description"`
	Features    []string `json:"features"          yaml:"features"`
	Highlighted bool     `json:"highlighted"       yaml:"highlighted"`
}

// Paid reports whether signing up for the plan requires a checkout.
func (p Plan) Paid() bool {
	return p.Price.IsPositive()
}

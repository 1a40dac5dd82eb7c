package divistack

import (
	"fmt"
	"strings"
)

// BaseCurrency is the currency every engine amount is expressed in.
const BaseCurrency = "EUR"

// PaymentInterval is the declared dividend frequency of a position.
//
// It is informational: the dates a dividend is paid on are always the
// explicit PaymentDates of the position.
type PaymentInterval string

const (
	PayMonthly    PaymentInterval = "monthly"
	PayQuarterly  PaymentInterval = "quarterly"
	PaySemiAnnual PaymentInterval = "semi-annual"
	PayAnnual     PaymentInterval = "annual"
)

// paymentsPerYear maps an interval to its number of payments a year.
var paymentsPerYear = map[PaymentInterval]int{
	PayMonthly:    12,
	PayQuarterly:  4,
	PaySemiAnnual: 2,
	PayAnnual:     1,
}

// PaymentsPerYear returns the number of payments a year for the interval.
// Unknown intervals count as annual.
func (i PaymentInterval) PaymentsPerYear() int {
	if n, ok := paymentsPerYear[i]; ok {
		return n
	}
	return 1
}

// ParsePaymentInterval parses an interval name, case insensitive.
func ParsePaymentInterval(s string) (PaymentInterval, error) {
	i := PaymentInterval(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := paymentsPerYear[i]; !ok {
		return "", fmt.Errorf("unknown payment interval %q", s)
	}
	return i, nil
}

// Sector classifies a position for diversification views.
type Sector string

// SectorLabels are the display names of the known sectors.
var SectorLabels = map[Sector]string{
	"tech":       "Technology",
	"finance":    "Finance",
	"health":     "Health",
	"consumer":   "Consumer",
	"energy":     "Energy",
	"industry":   "Industry",
	"realestate": "Real Estate",
	"utilities":  "Utilities",
	"materials":  "Materials",
	"telecom":    "Telecommunication",
	"other":      "Other",
}

// Label returns the display name of the sector, or its code when unknown.
func (s Sector) Label() string {
	if l, ok := SectorLabels[s]; ok {
		return l
	}
	return string(s)
}

// Position is a holding of a dividend paying security.
type Position struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ISIN          string   `json:"isin,omitempty"`
	Ticker        string   `json:"ticker,omitempty"`
	Quantity      float64  `json:"quantity"`
	PurchasePrice float64  `json:"purchasePrice"`
	CurrentPrice  *float64 `json:"currentPrice,omitempty"`
	PurchaseDate  Date     `json:"purchaseDate"`
	Country       string   `json:"country"`
	Sector        Sector   `json:"sector"`

	// DividendPerShare is expressed in the position's own Currency.
	DividendPerShare float64 `json:"dividendPerShare"`
	Currency         string  `json:"currency"`
	// ExchangeRate is in units of Currency per 1 EUR.
	ExchangeRate    float64         `json:"exchangeRate"`
	PaymentInterval PaymentInterval `json:"paymentInterval"`
	// PaymentDates are the dates dividends are paid on, in declaration order.
	PaymentDates    []Date `json:"paymentDates"`
	ExDividendDates []Date `json:"exDividendDates,omitempty"`
	LastPriceUpdate *Date  `json:"lastPriceUpdate,omitempty"`
}

// Price returns the current price if known, the purchase price otherwise.
func (p Position) Price() float64 {
	if p.CurrentPrice != nil {
		return *p.CurrentPrice
	}
	return p.PurchasePrice
}

// Value returns the market value of the position.
func (p Position) Value() float64 { return p.Quantity * p.Price() }

// Cost returns the purchase cost of the position.
func (p Position) Cost() float64 { return p.Quantity * p.PurchasePrice }

// DividendInEUR returns the dividend per share converted in euro.
//
// A zero exchange rate yields +Inf (or NaN for a zero dividend), it is not
// reported.
func (p Position) DividendInEUR() float64 {
	if p.Currency == BaseCurrency {
		return p.DividendPerShare
	}
	return p.DividendPerShare / p.ExchangeRate
}

// GrossPerPayment returns the gross euro amount paid on each payment date.
func (p Position) GrossPerPayment() float64 { return p.DividendInEUR() * p.Quantity }

// AnnualDividend returns the gross yearly dividend in the position's currency,
// based on the declared payment interval.
func (p Position) AnnualDividend() float64 {
	return p.Quantity * p.DividendPerShare * float64(p.PaymentInterval.PaymentsPerYear())
}

// TaxConfig holds the user's domestic tax settings.
type TaxConfig struct {
	// FreeAllowance is the yearly tax-free allowance in euro (Freistellungsauftrag).
	FreeAllowance float64 `json:"freeAllowance"`
	// FreeAllowanceUsed is informational, computations derive consumption themselves.
	FreeAllowanceUsed float64 `json:"freeAllowanceUsed"`
}

// DefaultTaxConfig is the allowance of a single person.
var DefaultTaxConfig = TaxConfig{FreeAllowance: 1000}

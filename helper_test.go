package divistack

import "time"

// d is a helper for tests to create dates in 2025.
func d(month time.Month, day int) Date { return NewDate(2025, month, day) }

// year2025 is the range of the whole 2025 year.
var year2025 = Yearly.Range(d(time.January, 1))

// stock is a helper for tests creating a euro position paying dps per share
// on each date.
func stock(id, country string, qty, dps float64, dates ...Date) Position {
	return Position{
		ID:               id,
		Name:             id,
		Quantity:         qty,
		PurchasePrice:    100,
		PurchaseDate:     d(time.January, 1),
		Country:          country,
		DividendPerShare: dps,
		Currency:         BaseCurrency,
		ExchangeRate:     1,
		PaymentInterval:  PayQuarterly,
		PaymentDates:     dates,
	}
}

func ptr[T any](v T) *T { return &v }

package divistack

import (
	"slices"
	"time"
)

// DividendPayment is a single taxed dividend cash event, all amounts in euro.
type DividendPayment struct {
	PositionID      string  `json:"positionId"`
	PositionName    string  `json:"positionName"`
	Date            Date    `json:"date"`
	GrossAmount     float64 `json:"grossAmount"`
	WithholdingTax  float64 `json:"withholdingTax"`
	CapitalGainsTax float64 `json:"capitalGainsTax"`
	NetAmount       float64 `json:"netAmount"`
}

// ExpandPayments returns the taxed payments of a position whose payment dates
// fall within r (boundaries included), and the allowance left after them.
//
// The allowance is consumed in the declaration order of the position's
// PaymentDates, each payment using up to its gross amount, while the
// returned payments are sorted by date. When the dates are not declared
// chronologically, an earlier payment can therefore be taxed as if a later
// one had already used the allowance.
func ExpandPayments(p Position, r Range, allowance float64) ([]DividendPayment, float64) {
	gross := p.GrossPerPayment()

	var payments []DividendPayment
	for _, on := range p.PaymentDates {
		if !r.Contains(on) {
			continue
		}
		tax := NetDividend(gross, p.Country, allowance)
		payments = append(payments, DividendPayment{
			PositionID:      p.ID,
			PositionName:    p.Name,
			Date:            on,
			GrossAmount:     tax.Gross,
			WithholdingTax:  tax.WithholdingTax,
			CapitalGainsTax: tax.CapitalGainsTax,
			NetAmount:       tax.Net,
		})
		allowance = consume(allowance, gross)
	}

	sortPayments(payments)
	return payments, allowance
}

// Payments is like ExpandPayments without the remaining allowance.
func Payments(p Position, r Range, allowance float64) []DividendPayment {
	payments, _ := ExpandPayments(p, r, allowance)
	return payments
}

// consume returns what is left of the allowance after a gross amount used it.
func consume(allowance, gross float64) float64 {
	used := min(allowance, gross)
	return max(0, allowance-used)
}

// sortPayments sorts payments by date, keeping the relative order of payments
// on the same day.
func sortPayments(payments []DividendPayment) {
	slices.SortStableFunc(payments, func(a, b DividendPayment) int {
		return a.Date.Compare(b.Date)
	})
}

// MonthlyTotal sums gross and net payments of a calendar month.
type MonthlyTotal struct {
	Month time.Month
	Year  int
	Gross float64
	Net   float64
}

// Key returns the month as "YYYY-MM".
func (m MonthlyTotal) Key() string { return NewDate(m.Year, m.Month, 1).Format("2006-01") }

// GroupPaymentsByMonth sums payments per calendar month. Only months with at
// least one payment are returned, in chronological order.
func GroupPaymentsByMonth(payments []DividendPayment) []MonthlyTotal {
	index := make(map[Date]int)
	var totals []MonthlyTotal
	for _, p := range payments {
		month := p.Date.StartOf(Monthly)
		i, ok := index[month]
		if !ok {
			i = len(totals)
			index[month] = i
			totals = append(totals, MonthlyTotal{Month: month.Month(), Year: month.Year()})
		}
		totals[i].Gross += p.GrossAmount
		totals[i].Net += p.NetAmount
	}
	slices.SortFunc(totals, func(a, b MonthlyTotal) int {
		return NewDate(a.Year, a.Month, 1).Compare(NewDate(b.Year, b.Month, 1))
	})
	return totals
}

// MonthlyChart returns exactly twelve monthly totals for the year, January
// first, months without payments being zero.
func MonthlyChart(payments []DividendPayment, year int) []MonthlyTotal {
	chart := make([]MonthlyTotal, 0, 12)
	for month := range Yearly.Range(NewDate(year, time.January, 1)).Periods(Monthly) {
		chart = append(chart, MonthlyTotal{Month: month.From.Month(), Year: year})
	}
	for _, m := range GroupPaymentsByMonth(payments) {
		if m.Year == year {
			chart[m.Month-1] = m
		}
	}
	return chart
}

package divistack

// DashboardStats aggregates the taxed dividends of a portfolio over a year.
type DashboardStats struct {
	Year                   int     `json:"year"`
	TotalGrossAnnual       float64 `json:"totalGrossAnnual"`
	TotalNetAnnual         float64 `json:"totalNetAnnual"`
	TotalWithholdingTax    float64 `json:"totalWithholdingTax"`
	TotalCapitalGainsTax   float64 `json:"totalCapitalGainsTax"`
	AverageMonthlyNet      float64 `json:"averageMonthlyNet"`
	FreeAllowanceRemaining float64 `json:"freeAllowanceRemaining"`
}

// PortfolioPayments expands the payments of all positions within r, sharing
// a single allowance across the portfolio.
//
// Positions are visited in slice order, each one consuming the allowance left
// by the previous ones, regardless of when their payments fall in the year.
// The payments are returned grouped by position in that same order, each
// group sorted by date, together with the allowance left.
func PortfolioPayments(positions []Position, r Range, allowance float64) ([]DividendPayment, float64) {
	var all []DividendPayment
	for _, p := range positions {
		var payments []DividendPayment
		payments, allowance = ExpandPayments(p, r, allowance)
		all = append(all, payments...)
	}
	return all, allowance
}

// NewDashboardStats computes the dividend statistics of the calendar year
// containing 'on'.
func NewDashboardStats(positions []Position, freeAllowance float64, on Date) DashboardStats {
	payments, remaining := PortfolioPayments(positions, Yearly.Range(on), freeAllowance)

	stats := DashboardStats{
		Year:                   on.Year(),
		FreeAllowanceRemaining: remaining,
	}
	for _, p := range payments {
		stats.TotalGrossAnnual += p.GrossAmount
		stats.TotalNetAnnual += p.NetAmount
		stats.TotalWithholdingTax += p.WithholdingTax
		stats.TotalCapitalGainsTax += p.CapitalGainsTax
	}
	stats.AverageMonthlyNet = stats.TotalNetAnnual / 12
	return stats
}

// CurrentDashboardStats computes the dividend statistics of the current year.
func CurrentDashboardStats(positions []Position, freeAllowance float64) DashboardStats {
	return NewDashboardStats(positions, freeAllowance, Today())
}

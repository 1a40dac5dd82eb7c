package divistack

// DRIPScenario describes a dividend reinvestment plan to simulate.
type DRIPScenario struct {
	Name                string  `json:"name"`
	InitialInvestment   float64 `json:"initialInvestment"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	Years               int     `json:"years"`
	// AverageYield is in percent.
	AverageYield float64 `json:"averageYield"`
	// DividendGrowthRate is in percent per year.
	DividendGrowthRate float64 `json:"dividendGrowthRate"`
	SharePrice         float64 `json:"sharePrice"`
	DividendPerShare   float64 `json:"dividendPerShare"`
}

// DRIPResult is the state of a reinvestment plan at the end of a year.
type DRIPResult struct {
	Year             int     `json:"year"`
	Shares           float64 `json:"totalShares"`
	TotalInvested    float64 `json:"totalInvested"`
	PortfolioValue   float64 `json:"portfolioValue"`
	AnnualDividend   float64 `json:"annualDividend"`
	DividendPerShare float64 `json:"dividendPerShare"`
	SharePrice       float64 `json:"sharePrice"`
}

// dividendsPerYear is the payment frequency assumed by the simulation.
const dividendsPerYear = 4

// SimulateDRIP projects a reinvestment plan year by year.
//
// The result has Years+1 rows: row 0 is the starting position, before any
// dividend is paid, and row k the position at the end of year k. Each year
// the dividend earned by the shares is reinvested at the year's price, then
// the year's contributions buy shares at that same price. Dividend per share
// then grows by DividendGrowthRate, and the share price by a quarter of the
// AverageYield.
func SimulateDRIP(s DRIPScenario) []DRIPResult {
	shares := s.InitialInvestment / s.SharePrice
	invested := s.InitialInvestment
	dps := s.DividendPerShare
	price := s.SharePrice

	results := make([]DRIPResult, 0, max(1, s.Years+1))
	results = append(results, DRIPResult{
		Year:             0,
		Shares:           shares,
		TotalInvested:    invested,
		PortfolioValue:   shares * price,
		AnnualDividend:   shares * dps * dividendsPerYear,
		DividendPerShare: dps,
		SharePrice:       price,
	})

	for year := 1; year <= s.Years; year++ {
		dividend := shares * dps * dividendsPerYear
		shares += dividend / price

		contribution := s.MonthlyContribution * 12
		shares += contribution / price
		invested += contribution

		results = append(results, DRIPResult{
			Year:             year,
			Shares:           shares,
			TotalInvested:    invested,
			PortfolioValue:   shares * price,
			AnnualDividend:   dividend,
			DividendPerShare: dps,
			SharePrice:       price,
		})

		dps *= 1 + s.DividendGrowthRate/100
		price *= 1 + s.AverageYield/100/4
	}
	return results
}

// ScenarioResults are the yearly results of a named scenario.
type ScenarioResults struct {
	Name    string
	Results []DRIPResult
}

// CompareDRIPScenarios simulates each scenario, in order.
func CompareDRIPScenarios(scenarios []DRIPScenario) []ScenarioResults {
	out := make([]ScenarioResults, len(scenarios))
	for i, s := range scenarios {
		out[i] = ScenarioResults{Name: s.Name, Results: SimulateDRIP(s)}
	}
	return out
}

// Final returns the last year of the results.
func (s ScenarioResults) Final() DRIPResult {
	if len(s.Results) == 0 {
		return DRIPResult{}
	}
	return s.Results[len(s.Results)-1]
}

// DRIPPresets are typical plans: 10000 invested, 500 a month for 20 years,
// from a conservative to an optimistic yield.
var DRIPPresets = []DRIPScenario{
	{Name: "Conservative", InitialInvestment: 10000, MonthlyContribution: 500, Years: 20, AverageYield: 3, DividendGrowthRate: 3, SharePrice: 100, DividendPerShare: 0.75},
	{Name: "Realistic", InitialInvestment: 10000, MonthlyContribution: 500, Years: 20, AverageYield: 4.5, DividendGrowthRate: 5, SharePrice: 100, DividendPerShare: 1.125},
	{Name: "Optimistic", InitialInvestment: 10000, MonthlyContribution: 500, Years: 20, AverageYield: 6, DividendGrowthRate: 7, SharePrice: 100, DividendPerShare: 1.5},
}

package divistack

import "math"

// SavingsPlanGoal is a yearly dividend income to reach by saving monthly.
type SavingsPlanGoal struct {
	TargetAnnualDividend float64 `json:"targetAnnualDividend"`
	// AverageYield is in percent.
	AverageYield float64 `json:"averageYield"`
	Years        int     `json:"years"`
	// DividendGrowthRate is in percent per year.
	DividendGrowthRate float64 `json:"dividendGrowthRate"`
	InitialInvestment  float64 `json:"initialInvestment"`
}

// SavingsPlanYear is the state of a savings plan at the end of a year.
type SavingsPlanYear struct {
	Year                int     `json:"year"`
	PortfolioValue      float64 `json:"portfolioValue"`
	AnnualDividend      float64 `json:"annualDividend"`
	MonthlyContribution float64 `json:"monthlyContribution"`
}

// SavingsPlanResult is a savings plan and its yearly breakdown.
type SavingsPlanResult struct {
	RequiredMonthlyContribution float64           `json:"requiredMonthlyContribution"`
	TotalInvested               float64           `json:"totalInvested"`
	FinalPortfolioValue         float64           `json:"finalPortfolioValue"`
	FinalAnnualDividend         float64           `json:"finalAnnualDividend"`
	YearlyBreakdown             []SavingsPlanYear `json:"yearlyBreakdown"`
}

// Reached reports whether the plan pays at least the goal's dividend.
func (r SavingsPlanResult) Reached(g SavingsPlanGoal) bool {
	return r.FinalAnnualDividend >= g.TargetAnnualDividend
}

// savingsPlanPrecision is the width, in euro per month, of the contribution
// interval the search stops at.
const savingsPlanPrecision = 0.1

// SolveSavingsPlan finds the smallest monthly contribution, within 0.1 euro,
// that reaches the goal's annual dividend after the goal's years.
//
// The contribution is searched by bisection between 0 and ten times the
// target dividend. A goal that cannot be reached within that bound is not
// reported: the plan at the upper bound is returned, check it with Reached.
func SolveSavingsPlan(g SavingsPlanGoal) SavingsPlanResult {
	low, high := 0.0, g.TargetAnnualDividend*10

	for high-low > savingsPlanPrecision {
		mid := (low + high) / 2
		if simulateSavingsPlan(g, mid).Reached(g) {
			high = mid
		} else {
			low = mid
		}
	}
	return simulateSavingsPlan(g, max(0, high))
}

// simulateSavingsPlan runs a savings plan with a fixed monthly contribution.
//
// Each year adds the contributions and reinvests the previous dividend, then
// the dividend is recomputed from the new portfolio value, the yield and the
// dividend growth accumulated since the start.
func simulateSavingsPlan(g SavingsPlanGoal, monthly float64) SavingsPlanResult {
	value := g.InitialInvestment
	dividend := value * (g.AverageYield / 100)

	breakdown := make([]SavingsPlanYear, 0, max(0, g.Years))
	for year := 1; year <= g.Years; year++ {
		value += monthly * 12
		value += dividend
		dividend = value * (g.AverageYield / 100) * math.Pow(1+g.DividendGrowthRate/100, float64(year))

		breakdown = append(breakdown, SavingsPlanYear{
			Year:                year,
			PortfolioValue:      value,
			AnnualDividend:      dividend,
			MonthlyContribution: monthly,
		})
	}

	return SavingsPlanResult{
		RequiredMonthlyContribution: monthly,
		TotalInvested:               g.InitialInvestment + monthly*12*float64(g.Years),
		FinalPortfolioValue:         value,
		FinalAnnualDividend:         dividend,
		YearlyBreakdown:             breakdown,
	}
}

// YieldScenario is a named pair of yield and dividend growth, in percent.
type YieldScenario struct {
	Name               string
	AverageYield       float64
	DividendGrowthRate float64
}

// YieldScenarios go from a conservative to an optimistic market.
var YieldScenarios = []YieldScenario{
	{"Conservative", 3, 3},
	{"Realistic", 4.5, 5},
	{"Optimistic", 6, 7},
}

// SavingsPlanComparison is the plan solving a goal under a scenario.
type SavingsPlanComparison struct {
	Scenario YieldScenario
	Plan     SavingsPlanResult
}

// CompareSavingsPlans solves the goal under each scenario, in order.
func CompareSavingsPlans(g SavingsPlanGoal, scenarios []YieldScenario) []SavingsPlanComparison {
	out := make([]SavingsPlanComparison, len(scenarios))
	for i, s := range scenarios {
		sg := g
		sg.AverageYield = s.AverageYield
		sg.DividendGrowthRate = s.DividendGrowthRate
		out[i] = SavingsPlanComparison{Scenario: s, Plan: SolveSavingsPlan(sg)}
	}
	return out
}

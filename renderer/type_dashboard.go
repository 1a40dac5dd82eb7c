package renderer

import (
	"time"

	"github.com/etnz/divistack"
)

// Dashboard is the yearly overview of a portfolio, with amounts ready to
// print.
type Dashboard struct {
	Year int `json:"year"`

	Gross              divistack.Money   `json:"gross"`
	WithholdingTax     divistack.Money   `json:"withholdingTax"`
	CapitalGainsTax    divistack.Money   `json:"capitalGainsTax"`
	Net                divistack.Money   `json:"net"`
	AverageMonthlyNet  divistack.Money   `json:"averageMonthlyNet"`
	Allowance          divistack.Money   `json:"allowance"`
	AllowanceRemaining divistack.Money   `json:"allowanceRemaining"`
	TaxBurden          divistack.Percent `json:"taxBurden"`
	// Next is the next payment in the year, if any.
	Next *DashboardPayment `json:"next,omitempty"`

	Months []DashboardMonth `json:"months"`

	Value       divistack.Money   `json:"value"`
	Cost        divistack.Money   `json:"cost"`
	Gain        divistack.Money   `json:"gain"`
	Performance divistack.Percent `json:"performance"`
	Yield       divistack.Percent `json:"yield"`
	YieldOnCost divistack.Percent `json:"yieldOnCost"`

	Sectors  []DashboardWeight `json:"sectors"`
	Holdings []DashboardWeight `json:"holdings"`
	Winners  []DashboardGain   `json:"winners"`
	Losers   []DashboardGain   `json:"losers"`
}

type DashboardPayment struct {
	Name string          `json:"name"`
	Date divistack.Date  `json:"date"`
	Net  divistack.Money `json:"net"`
}

type DashboardMonth struct {
	Month time.Month      `json:"month"`
	Gross divistack.Money `json:"gross"`
	Net   divistack.Money `json:"net"`
}

// DashboardWeight is a share of the portfolio market value.
type DashboardWeight struct {
	Label  string            `json:"label"`
	Name   string            `json:"name"`
	Value  divistack.Money   `json:"value"`
	Weight divistack.Percent `json:"weight"`
}

// DashboardGain is the price change of a position, per share.
type DashboardGain struct {
	Name   string            `json:"name"`
	Gain   divistack.Money   `json:"gain"`
	Change divistack.Percent `json:"change"`
}

// topCount is the number of holdings, winners and losers displayed.
const topCount = 3

// NewDashboard computes the dashboard of the year containing 'on'.
func NewDashboard(positions []divistack.Position, allowance float64, on divistack.Date) *Dashboard {
	eur := divistack.EUR
	stats := divistack.NewDashboardStats(positions, allowance, on)
	perf := divistack.NewPerformance(positions)
	yield := divistack.NewYield(stats.TotalGrossAnnual, perf)

	d := &Dashboard{
		Year:               stats.Year,
		Gross:              eur(stats.TotalGrossAnnual),
		WithholdingTax:     eur(stats.TotalWithholdingTax),
		CapitalGainsTax:    eur(stats.TotalCapitalGainsTax),
		Net:                eur(stats.TotalNetAnnual),
		AverageMonthlyNet:  eur(stats.AverageMonthlyNet),
		Allowance:          eur(allowance),
		AllowanceRemaining: eur(stats.FreeAllowanceRemaining),
		Value:              eur(perf.TotalValue),
		Cost:               eur(perf.TotalCost),
		Gain:               eur(perf.TotalGain),
		Performance:        perf.PerformancePercent,
		Yield:              yield.Current,
		YieldOnCost:        yield.OnCost,
	}
	if stats.TotalGrossAnnual > 0 {
		d.TaxBurden = stats.TaxBurden()
	}

	if next, ok := divistack.NextPayment(positions, on, allowance); ok {
		d.Next = &DashboardPayment{Name: next.PositionName, Date: next.Date, Net: eur(next.NetAmount)}
	}

	payments, _ := divistack.PortfolioPayments(positions, divistack.Yearly.Range(on), allowance)
	for _, m := range divistack.MonthlyChart(payments, stats.Year) {
		d.Months = append(d.Months, DashboardMonth{Month: m.Month, Gross: eur(m.Gross), Net: eur(m.Net)})
	}

	for _, s := range divistack.SectorAllocation(positions) {
		d.Sectors = append(d.Sectors, DashboardWeight{Label: s.Sector.Label(), Value: eur(s.Value), Weight: s.Percentage})
	}
	for _, h := range divistack.TopHoldings(positions, topCount) {
		d.Holdings = append(d.Holdings, DashboardWeight{Name: h.Position.Name, Value: eur(h.Value), Weight: h.Weight})
	}
	winners, losers := divistack.WinnersLosers(positions, topCount)
	for _, g := range winners {
		d.Winners = append(d.Winners, newDashboardGain(g))
	}
	for _, g := range losers {
		d.Losers = append(d.Losers, newDashboardGain(g))
	}
	return d
}

func newDashboardGain(g divistack.PositionGain) DashboardGain {
	return DashboardGain{Name: g.Position.Name, Gain: divistack.M(g.Gain, g.Position.Currency), Change: g.Percent}
}

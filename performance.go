package divistack

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Performance is the valuation of a portfolio against its purchase cost.
type Performance struct {
	TotalCost          float64 `json:"totalCost"`
	TotalValue         float64 `json:"totalValue"`
	TotalGain          float64 `json:"totalGain"`
	PerformancePercent Percent `json:"performancePercent"`
}

// NewPerformance values the positions at their current price, falling back
// to the purchase price when none is known.
func NewPerformance(positions []Position) Performance {
	costs := make([]float64, len(positions))
	values := make([]float64, len(positions))
	for i, p := range positions {
		costs[i] = p.Cost()
		values[i] = p.Value()
	}

	perf := Performance{
		TotalCost:  floats.Sum(costs),
		TotalValue: floats.Sum(values),
	}
	perf.TotalGain = perf.TotalValue - perf.TotalCost
	if perf.TotalCost > 0 {
		perf.PerformancePercent = Percent(perf.TotalGain / perf.TotalCost * 100)
	}
	return perf
}

// SectorWeight is the market value held in a sector.
type SectorWeight struct {
	Sector     Sector
	Value      float64
	Percentage Percent
}

// SectorAllocation returns the market value per sector, largest first.
func SectorAllocation(positions []Position) []SectorWeight {
	index := make(map[Sector]int)
	var weights []SectorWeight
	for _, p := range positions {
		i, ok := index[p.Sector]
		if !ok {
			i = len(weights)
			index[p.Sector] = i
			weights = append(weights, SectorWeight{Sector: p.Sector})
		}
		weights[i].Value += p.Value()
	}

	values := make([]float64, len(weights))
	for i, w := range weights {
		values[i] = w.Value
	}
	if total := floats.Sum(values); total > 0 {
		for i := range weights {
			weights[i].Percentage = Percent(weights[i].Value / total * 100)
		}
	}

	slices.SortStableFunc(weights, func(a, b SectorWeight) int { return cmp.Compare(b.Value, a.Value) })
	return weights
}

// PositionGain is the price change of a position since its purchase.
type PositionGain struct {
	Position Position
	Gain     float64 // per share
	Percent  Percent
}

// WinnersLosers returns up to n best and n worst positions by price change
// in percent.
func WinnersLosers(positions []Position, n int) (winners, losers []PositionGain) {
	gains := make([]PositionGain, len(positions))
	for i, p := range positions {
		gain := p.Price() - p.PurchasePrice
		gains[i] = PositionGain{
			Position: p,
			Gain:     gain,
			Percent:  Percent(gain / p.PurchasePrice * 100),
		}
	}
	slices.SortStableFunc(gains, func(a, b PositionGain) int { return cmp.Compare(b.Percent, a.Percent) })

	n = max(0, min(n, len(gains)))
	winners = gains[:n]
	reversed := slices.Clone(gains)
	slices.Reverse(reversed)
	losers = reversed[:n]
	return winners, losers
}

// Holding is a position and its share of the portfolio market value.
type Holding struct {
	Position Position
	Value    float64
	Weight   Percent
}

// TopHoldings returns the n largest positions by market value.
func TopHoldings(positions []Position, n int) []Holding {
	total := NewPerformance(positions).TotalValue
	holdings := make([]Holding, len(positions))
	for i, p := range positions {
		holdings[i] = Holding{Position: p, Value: p.Value()}
		if total != 0 {
			holdings[i].Weight = Percent(holdings[i].Value / total * 100)
		}
	}
	slices.SortStableFunc(holdings, func(a, b Holding) int { return cmp.Compare(b.Value, a.Value) })
	return holdings[:max(0, min(n, len(holdings)))]
}

// Yield compares a yearly gross dividend to the portfolio value and cost.
type Yield struct {
	GrossAnnual float64
	// Current is the dividend yield on the market value.
	Current Percent
	// OnCost is the dividend yield on the purchase cost.
	OnCost Percent
}

// NewYield computes the yields of a gross annual dividend.
func NewYield(grossAnnual float64, perf Performance) Yield {
	y := Yield{GrossAnnual: grossAnnual}
	if perf.TotalValue > 0 {
		y.Current = Percent(grossAnnual / perf.TotalValue * 100)
	}
	if perf.TotalCost > 0 {
		y.OnCost = Percent(grossAnnual / perf.TotalCost * 100)
	}
	return y
}

// TaxBurden returns the share of the gross dividends paid in taxes.
func (s DashboardStats) TaxBurden() Percent {
	return Percent((s.TotalWithholdingTax + s.TotalCapitalGainsTax) / s.TotalGrossAnnual * 100)
}

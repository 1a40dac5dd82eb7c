package divistack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerformance(t *testing.T) {
	a := stock("A", "DE", 10, 1)
	a.PurchasePrice = 50
	a.CurrentPrice = ptr(60.0)
	b := stock("B", "US", 5, 1) // no current price, valued at purchase price
	b.PurchasePrice = 100

	perf := NewPerformance([]Position{a, b})
	assert.InDelta(t, 1000, perf.TotalCost, 1e-9)
	assert.InDelta(t, 1100, perf.TotalValue, 1e-9)
	assert.InDelta(t, 100, perf.TotalGain, 1e-9)
	assert.True(t, perf.PerformancePercent.Equal(10))

	assert.Zero(t, NewPerformance(nil).PerformancePercent, "no cost, no performance")
}

func TestSectorAllocation(t *testing.T) {
	a := stock("A", "DE", 10, 1)
	a.Sector = "tech"
	b := stock("B", "DE", 30, 1)
	b.Sector = "energy"
	c := stock("C", "DE", 10, 1)
	c.Sector = "tech"

	weights := SectorAllocation([]Position{a, b, c})
	require.Len(t, weights, 2)
	assert.Equal(t, Sector("energy"), weights[0].Sector)
	assert.Equal(t, "Energy", weights[0].Sector.Label())
	assert.True(t, weights[0].Percentage.Equal(60))
	assert.InDelta(t, 2000, weights[1].Value, 1e-9)
	assert.Equal(t, "unknown", Sector("unknown").Label())
}

func TestWinnersLosers(t *testing.T) {
	var positions []Position
	for i, price := range []float64{110, 90, 150, 100, 50} {
		p := stock(string(rune('A'+i)), "DE", 1, 1)
		p.CurrentPrice = ptr(price)
		positions = append(positions, p)
	}

	winners, losers := WinnersLosers(positions, 3)
	require.Len(t, winners, 3)
	require.Len(t, losers, 3)
	assert.Equal(t, "C", winners[0].Position.ID)
	assert.True(t, winners[0].Percent.Equal(50))
	assert.Equal(t, "E", losers[0].Position.ID)
	assert.InDelta(t, -50, losers[0].Gain, 1e-9)

	winners, losers = WinnersLosers(positions[:1], -1)
	assert.Empty(t, winners)
	assert.Empty(t, losers)
}

func TestTopHoldings(t *testing.T) {
	positions := []Position{stock("A", "DE", 1, 1), stock("B", "DE", 3, 1)}
	top := TopHoldings(positions, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Position.ID)
	assert.True(t, top[0].Weight.Equal(75))
}

func TestYield(t *testing.T) {
	perf := Performance{TotalCost: 1000, TotalValue: 2000}
	y := NewYield(100, perf)
	assert.True(t, y.Current.Equal(5))
	assert.True(t, y.OnCost.Equal(10))

	y = NewYield(100, Performance{})
	assert.Zero(t, y.Current)
	assert.Zero(t, y.OnCost)
}

func TestTaxBurden(t *testing.T) {
	a := stock("A", "US", 10, 10, d(time.March, 1))
	stats := NewDashboardStats([]Position{a}, 0, d(time.March, 1))
	// 15 withholding and 11.375 domestic tax on 100
	assert.True(t, stats.TaxBurden().Equal(26.375), "got %v", stats.TaxBurden())
}

package divistack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveSavingsPlan(t *testing.T) {
	tests := []struct {
		name string
		goal SavingsPlanGoal
	}{
		{"from scratch", SavingsPlanGoal{TargetAnnualDividend: 6000, AverageYield: 4, Years: 20}},
		{"with growth", SavingsPlanGoal{TargetAnnualDividend: 12000, AverageYield: 3.5, Years: 15, DividendGrowthRate: 5}},
		{"with capital", SavingsPlanGoal{TargetAnnualDividend: 2400, AverageYield: 5, Years: 10, InitialInvestment: 20000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := SolveSavingsPlan(tt.goal)
			assert.True(t, plan.Reached(tt.goal), "final dividend %v", plan.FinalAnnualDividend)
			assert.Len(t, plan.YearlyBreakdown, tt.goal.Years)

			// the contribution is minimal within the search precision.
			less := simulateSavingsPlan(tt.goal, plan.RequiredMonthlyContribution-savingsPlanPrecision)
			assert.False(t, less.Reached(tt.goal))

			assert.InDelta(t, tt.goal.InitialInvestment+plan.RequiredMonthlyContribution*12*float64(tt.goal.Years), plan.TotalInvested, 1e-6)
			last := plan.YearlyBreakdown[len(plan.YearlyBreakdown)-1]
			assert.Equal(t, plan.FinalAnnualDividend, last.AnnualDividend)
			assert.Equal(t, plan.FinalPortfolioValue, last.PortfolioValue)
		})
	}
}

func TestSimulateSavingsPlan(t *testing.T) {
	goal := SavingsPlanGoal{AverageYield: 10, Years: 2, DividendGrowthRate: 10, InitialInvestment: 1000}
	plan := simulateSavingsPlan(goal, 100)

	// year 1: 1000 + 1200 + 100 of dividend, then 10% grown once
	assert.InDelta(t, 2300, plan.YearlyBreakdown[0].PortfolioValue, 1e-9)
	assert.InDelta(t, 2300*0.1*1.1, plan.YearlyBreakdown[0].AnnualDividend, 1e-9)
	// year 2: the growth factor is applied twice to the whole value
	value := 2300 + 1200 + 253.0
	assert.InDelta(t, value, plan.YearlyBreakdown[1].PortfolioValue, 1e-9)
	assert.InDelta(t, value*0.1*1.1*1.1, plan.FinalAnnualDividend, 1e-9)
	assert.InDelta(t, 3400, plan.TotalInvested, 1e-9)
}

func TestSolveSavingsPlan_Unreachable(t *testing.T) {
	goal := SavingsPlanGoal{TargetAnnualDividend: 1000, AverageYield: 0, Years: 10}
	plan := SolveSavingsPlan(goal)
	assert.False(t, plan.Reached(goal))
	assert.Equal(t, 10000.0, plan.RequiredMonthlyContribution, "the upper bound is returned")
}

func TestSolveSavingsPlan_NoYears(t *testing.T) {
	goal := SavingsPlanGoal{TargetAnnualDividend: 400, AverageYield: 5, InitialInvestment: 10000}
	plan := SolveSavingsPlan(goal)
	assert.Empty(t, plan.YearlyBreakdown)
	assert.InDelta(t, 500, plan.FinalAnnualDividend, 1e-9)
	assert.InDelta(t, 10000, plan.FinalPortfolioValue, 1e-9)
	assert.InDelta(t, 10000, plan.TotalInvested, 1e-9)
	assert.Less(t, plan.RequiredMonthlyContribution, savingsPlanPrecision)
}

func TestSolveSavingsPlan_ZeroTarget(t *testing.T) {
	plan := SolveSavingsPlan(SavingsPlanGoal{AverageYield: 4, Years: 5})
	assert.Zero(t, plan.RequiredMonthlyContribution)
}

func TestCompareSavingsPlans(t *testing.T) {
	goal := SavingsPlanGoal{TargetAnnualDividend: 12000, AverageYield: 1, Years: 20}
	plans := CompareSavingsPlans(goal, YieldScenarios)
	assert.Len(t, plans, 3)
	assert.Equal(t, "Conservative", plans[0].Scenario.Name)
	// higher yields need smaller contributions
	assert.Greater(t, plans[0].Plan.RequiredMonthlyContribution, plans[1].Plan.RequiredMonthlyContribution)
	assert.Greater(t, plans[1].Plan.RequiredMonthlyContribution, plans[2].Plan.RequiredMonthlyContribution)
	assert.Equal(t, SolveSavingsPlan(SavingsPlanGoal{TargetAnnualDividend: 12000, AverageYield: 6, DividendGrowthRate: 7, Years: 20}), plans[2].Plan)
}

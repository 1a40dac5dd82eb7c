package divistack

// GoalProgress measures the current dividend income against a monthly goal.
type GoalProgress struct {
	MonthlyGoal      float64
	Progress         Percent
	MonthlyRemaining float64
	AnnualGoal       float64
	AnnualRemaining  float64
}

// NewGoalProgress compares the current net dividends to a monthly goal.
// Remaining amounts are never negative.
func NewGoalProgress(monthlyGoal, currentMonthly, currentAnnual float64) GoalProgress {
	g := GoalProgress{
		MonthlyGoal:      monthlyGoal,
		MonthlyRemaining: max(0, monthlyGoal-currentMonthly),
		AnnualGoal:       monthlyGoal * 12,
	}
	g.AnnualRemaining = max(0, g.AnnualGoal-currentAnnual)
	if monthlyGoal > 0 {
		g.Progress = Percent(currentMonthly / monthlyGoal * 100)
	}
	return g
}

// Reached reports whether the monthly goal is met.
func (g GoalProgress) Reached() bool { return g.Progress >= 100 }

package renderer

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/etnz/divistack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(m time.Month, d int) divistack.Date { return divistack.NewDate(2025, m, d) }

func positions() []divistack.Position {
	price := 30.0
	return []divistack.Position{
		{
			ID: "1", Name: "Allianz", Quantity: 10, PurchasePrice: 200, Country: "DE", Sector: "finance",
			DividendPerShare: 13.8, Currency: "EUR", ExchangeRate: 1, PaymentInterval: divistack.PayAnnual,
			PaymentDates: []divistack.Date{date(time.May, 12)},
		},
		{
			ID: "2", Name: "Realty Income", Quantity: 100, PurchasePrice: 50, CurrentPrice: &price, Country: "US", Sector: "realestate",
			DividendPerShare: 0.26, Currency: "USD", ExchangeRate: 1.04, PaymentInterval: divistack.PayMonthly,
			PaymentDates: []divistack.Date{date(time.January, 15), date(time.February, 15), date(time.March, 15)},
		},
	}
}

func TestTemplates(t *testing.T) {
	// every template file is used by a report
	files, err := fs.Glob(templates, "*.md")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"dashboard.md", "dashboard_income.md", "dashboard_months.md", "dashboard_portfolio.md"}, files)
}

func TestMust(t *testing.T) {
	assert.Equal(t, 1, must(1, nil))
	assert.Panics(t, func() { must(fs.Sub(templatesFS, "../templates")) })
}

func TestRenderDashboard(t *testing.T) {
	d := NewDashboard(positions(), 100, date(time.February, 1))
	require.Len(t, d.Months, 12)
	require.NotNil(t, d.Next)
	assert.Equal(t, "Realty Income", d.Next.Name)
	assert.Equal(t, date(time.February, 15), d.Next.Date)

	out := RenderDashboard(d)
	assert.NotContains(t, out, "error")
	for _, want := range []string{
		"# Dividend Dashboard 2025",
		"| Gross Dividends | €213.00 |",
		"| Withholding Tax | €11.25 |",
		"| Free Allowance Left | €0.00 of €100.00 |",
		"Next payment: **Realty Income** on 2025-02-15",
		"| January |",
		"| Real Estate |",
		"| Allianz |",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderDashboard_Empty(t *testing.T) {
	out := RenderDashboard(NewDashboard(nil, 1000, date(time.February, 1)))
	assert.Contains(t, out, "**Net Dividends** | **€0.00**")
	assert.NotContains(t, out, "Next payment")
	assert.NotContains(t, out, "### Sectors")
}

func TestPaymentsMarkdown(t *testing.T) {
	r := divistack.NewRange(date(time.January, 1), date(time.March, 31))
	payments, _ := divistack.PortfolioPayments(positions(), r, 1000)
	out := PaymentsMarkdown("Payments", payments)
	assert.Contains(t, out, "# Payments")
	assert.Contains(t, out, "2025-01-15")
	assert.Contains(t, out, "Realty Income")
	assert.Contains(t, out, "## By Month")
	assert.Contains(t, out, "2025-03")

	assert.Contains(t, PaymentsMarkdown("Payments", nil), "No dividend payment.")
}

func TestCalendarMarkdown(t *testing.T) {
	from := date(time.January, 14)
	upcoming := divistack.UpcomingPayments(positions(), divistack.Window90Days.Range(from), 1000)
	out := CalendarMarkdown(from, upcoming)
	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "32 days")
	assert.Contains(t, out, "3 payments")
	assert.NotContains(t, out, "Allianz")

	assert.Contains(t, CalendarMarkdown(from, nil), "No dividend payment after 2025-01-14.")
}

func TestDRIPMarkdown(t *testing.T) {
	scenarios := divistack.CompareDRIPScenarios([]divistack.DRIPScenario{
		{Name: "Conservative", InitialInvestment: 10000, Years: 2, AverageYield: 3, SharePrice: 100, DividendPerShare: 0.75},
		{Name: "Aggressive", InitialInvestment: 10000, Years: 2, AverageYield: 6, SharePrice: 100, DividendPerShare: 1.5},
	})
	out := DRIPMarkdown(scenarios)
	assert.Contains(t, out, "## Comparison")
	assert.Contains(t, out, "## Conservative")
	assert.Contains(t, out, "## Aggressive")
	assert.Contains(t, out, "€10,000.00")

	single := DRIPMarkdown(scenarios[:1])
	assert.NotContains(t, single, "Comparison")
}

func TestSavingsPlanMarkdown(t *testing.T) {
	g := divistack.SavingsPlanGoal{TargetAnnualDividend: 6000, AverageYield: 4, Years: 20}
	out := SavingsPlanMarkdown(g, divistack.SolveSavingsPlan(g))
	assert.Contains(t, out, "Monthly Savings")
	assert.Contains(t, out, "## Yearly Breakdown")
	assert.NotContains(t, out, "upper estimate")

	g.AverageYield = 0
	out = SavingsPlanMarkdown(g, divistack.SolveSavingsPlan(g))
	assert.Contains(t, out, "upper estimate")
}

func TestAllowancePlanMarkdown(t *testing.T) {
	out := AllowancePlanMarkdown(divistack.OptimizeAllowance(positions(), 1000))
	assert.Contains(t, out, "Realty Income")
	assert.Contains(t, out, "(15.00%)")
	assert.Contains(t, out, "Allowance Left")
}

func TestVorabpauschaleMarkdown(t *testing.T) {
	f := divistack.FundYear{Year: 2024, StartValue: 10000, EndValue: 11000, Basiszins: 2.29}
	out := VorabpauschaleMarkdown(f, divistack.NewVorabpauschale(f))
	assert.Contains(t, out, "# Vorabpauschale 2024")
	assert.Contains(t, out, "€160.30")
}

func TestGoalMarkdown(t *testing.T) {
	out := GoalMarkdown(divistack.NewGoalProgress(500, 250, 3000))
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "`██████████░░░░░░░░░░`")
	assert.NotContains(t, out, "Goal reached")

	out = GoalMarkdown(divistack.NewGoalProgress(500, 750, 9000))
	assert.Contains(t, out, strings.Repeat("█", 20))
	assert.Contains(t, out, "Goal reached")
}

func TestSavingsPlansMarkdown(t *testing.T) {
	g := divistack.SavingsPlanGoal{TargetAnnualDividend: 12000, Years: 20}
	out := SavingsPlansMarkdown(divistack.CompareSavingsPlans(g, divistack.YieldScenarios))
	assert.Contains(t, out, "Realistic")
	assert.Contains(t, out, "4.50%")
}

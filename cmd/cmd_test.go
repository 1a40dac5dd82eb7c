package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/divistack"
	"github.com/etnz/divistack/config"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPortfolio = `{
  "positions": [
    {
      "id": "allianz",
      "name": "Allianz",
      "quantity": 10,
      "purchasePrice": 200,
      "purchaseDate": "2023-01-02",
      "country": "DE",
      "sector": "finance",
      "dividendPerShare": 13.8,
      "currency": "EUR",
      "exchangeRate": 1,
      "paymentInterval": "annual",
      "paymentDates": ["2025-05-12"]
    },
    {
      "name": "Realty Income",
      "quantity": 100,
      "purchasePrice": 50,
      "purchaseDate": "2023-01-02",
      "country": "US",
      "sector": "realestate",
      "dividendPerShare": 0.26,
      "currency": "USD",
      "exchangeRate": 1.04,
      "paymentInterval": "monthly",
      "paymentDates": ["2025-01-15", "2025-02-15", "2025-03-15"]
    }
  ],
  "taxConfig": {"freeAllowance": 100, "freeAllowanceUsed": 0},
  "version": "1.0"
}`

// setup writes the test portfolio and points the configuration to it.
func setup(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(name, []byte(testPortfolio), 0644))

	old := cfg
	cfg = config.NewDefaultConfig()
	cfg.PortfolioFile = name
	t.Cleanup(func() { cfg = old })

	*rawMarkdown = true
	t.Cleanup(func() { *rawMarkdown = false })
	return name
}

// run executes a subcommand and returns its output.
func run(t *testing.T, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var out bytes.Buffer
	old := stdout
	stdout = &out
	t.Cleanup(func() { stdout = old })

	fs := flag.NewFlagSet("dsk", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "dsk")
	Register(commander)
	require.NoError(t, fs.Parse(args))
	status := commander.Execute(context.Background())
	return out.String(), status
}

func TestDashboard(t *testing.T) {
	setup(t)
	out, status := run(t, "dashboard", "-d", "2025-06-01")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "2025")
	assert.Contains(t, out, "Allianz")
}

func TestDashboardJSON(t *testing.T) {
	setup(t)
	out, status := run(t, "dashboard", "-d", "2025-06-01", "-json")
	require.Equal(t, subcommands.ExitSuccess, status)

	var d struct {
		Year int `json:"year"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 2025, d.Year)
}

func TestPaymentsPeriod(t *testing.T) {
	setup(t)
	out, status := run(t, "payments", "-d", "2025-02-10", "-p", "monthly", "-json")
	require.Equal(t, subcommands.ExitSuccess, status)

	var payments []divistack.DividendPayment
	require.NoError(t, json.Unmarshal([]byte(out), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, "Realty Income", payments[0].PositionName)
	assert.Equal(t, divistack.MustParse("2025-02-15"), payments[0].Date)
}

func TestPeriodPaymentsUsesYearlyAllowance(t *testing.T) {
	positions := []divistack.Position{{
		ID: "a", Name: "A", Quantity: 100, DividendPerShare: 1, Currency: "EUR", ExchangeRate: 1, Country: "DE",
		PaymentDates: []divistack.Date{divistack.MustParse("2025-01-15"), divistack.MustParse("2025-04-15")},
	}}

	// January uses the whole allowance, April is fully taxed.
	april := periodPayments(positions, 100, divistack.Monthly.Range(divistack.MustParse("2025-04-01")))
	require.Len(t, april, 1)
	assert.InDelta(t, 100*divistack.CapitalGainsTaxRate, april[0].CapitalGainsTax, 1e-9)
}

func TestPeriodPaymentsAcrossNewYear(t *testing.T) {
	positions := []divistack.Position{{
		ID: "a", Name: "A", Quantity: 100, DividendPerShare: 1, Currency: "EUR", ExchangeRate: 1, Country: "DE",
		PaymentDates: []divistack.Date{
			divistack.MustParse("2025-06-15"),
			divistack.MustParse("2025-12-30"),
			divistack.MustParse("2026-01-02"),
		},
	}}

	week := periodPayments(positions, 100, divistack.Weekly.Range(divistack.MustParse("2025-12-31")))
	require.Len(t, week, 2)
	assert.Equal(t, divistack.MustParse("2025-12-30"), week[0].Date)
	assert.InDelta(t, 100*divistack.CapitalGainsTaxRate, week[0].CapitalGainsTax, 1e-9)
	// 2026 starts with a new allowance.
	assert.Equal(t, divistack.MustParse("2026-01-02"), week[1].Date)
	assert.Zero(t, week[1].CapitalGainsTax)
}

func TestPaymentsWeekAcrossNewYear(t *testing.T) {
	name := setup(t)
	p, err := divistack.LoadPortfolio(name)
	require.NoError(t, err)
	p.Positions[1].PaymentDates = append(p.Positions[1].PaymentDates, divistack.MustParse("2026-01-02"))
	require.NoError(t, divistack.SavePortfolio(name, p))

	out, status := run(t, "payments", "-d", "2025-12-31", "-p", "weekly", "-json")
	require.Equal(t, subcommands.ExitSuccess, status)

	var payments []divistack.DividendPayment
	require.NoError(t, json.Unmarshal([]byte(out), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, "Realty Income", payments[0].PositionName)
	assert.Equal(t, divistack.MustParse("2026-01-02"), payments[0].Date)
}

func TestCalendar(t *testing.T) {
	setup(t)
	out, status := run(t, "calendar", "-d", "2025-01-01", "-w", "90d")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Realty Income")
	assert.NotContains(t, out, "Allianz")
}

func TestCalendarBadWindow(t *testing.T) {
	setup(t)
	_, status := run(t, "calendar", "-w", "1y")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestSimulations(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"drip", "-years", "2"}, "Custom"},
		{[]string{"drip", "-compare"}, "Optimistic"},
		{[]string{"savings", "-target", "1200", "-years", "10"}, "Savings Plan"},
		{[]string{"savings", "-target", "1200", "-compare"}, "Conservative"},
		{[]string{"vorab", "-start", "10000", "-end", "11000", "-basiszins", "2.29"}, "Vorabpauschale"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			setup(t)
			out, status := run(t, tt.args...)
			require.Equal(t, subcommands.ExitSuccess, status)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestDRIPBadPrice(t *testing.T) {
	setup(t)
	_, status := run(t, "drip", "-price", "0")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestGoalRequiresMonthly(t *testing.T) {
	setup(t)
	_, status := run(t, "goal")
	assert.Equal(t, subcommands.ExitUsageError, status)

	out, status := run(t, "goal", "-monthly", "50", "-d", "2025-06-01")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Goal")
}

func TestOptimize(t *testing.T) {
	setup(t)
	out, status := run(t, "optimize")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Allianz")
	assert.Contains(t, out, "Realty Income")
}

func TestFmt(t *testing.T) {
	name := setup(t)
	_, status := run(t, "fmt")
	require.Equal(t, subcommands.ExitSuccess, status)

	p, err := divistack.LoadPortfolio(name)
	require.NoError(t, err)
	require.Len(t, p.Positions, 2)
	assert.Equal(t, "allianz", p.Positions[0].ID)
	assert.NotEmpty(t, p.Positions[1].ID)
	// Declaration order is kept.
	assert.Equal(t, "Realty Income", p.Positions[1].Name)
}

func TestFmtInvalid(t *testing.T) {
	name := setup(t)
	require.NoError(t, os.WriteFile(name, []byte(`{"positions":[{"name":"","quantity":0}]}`), 0644))
	before, err := os.ReadFile(name)
	require.NoError(t, err)

	_, status := run(t, "fmt")
	assert.Equal(t, subcommands.ExitFailure, status)

	after, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, before, after, "an invalid portfolio is not written")
}

func TestMissingPortfolio(t *testing.T) {
	setup(t)
	cfg.PortfolioFile = filepath.Join(t.TempDir(), "missing.json")
	_, status := run(t, "dashboard")
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestTopic(t *testing.T) {
	setup(t)
	out, status := run(t, "topic", "taxes")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# Taxes")

	_, status = run(t, "topic", "unknown")
	assert.Equal(t, subcommands.ExitFailure, status)

	out, status = run(t, "topic", "-list")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "allowance\n")
	assert.NotContains(t, out, "readme")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("DIVISTACK_PORTFOLIO", "from-env.json")
	t.Setenv("DIVISTACK_FREE_ALLOWANCE", "2000")
	old := cfg
	t.Cleanup(func() { cfg = old })

	require.NoError(t, Init())
	assert.Equal(t, "from-env.json", cfg.PortfolioFile)
	assert.Equal(t, 2000.0, cfg.FreeAllowance)

	*portfolioFile = "from-flag.json"
	t.Cleanup(func() { *portfolioFile = "" })
	require.NoError(t, Init())
	assert.Equal(t, "from-flag.json", cfg.PortfolioFile)
}

func TestInitMissingConfig(t *testing.T) {
	*configFile = filepath.Join(t.TempDir(), "missing.toml")
	t.Cleanup(func() { *configFile = "" })
	assert.Error(t, Init())
}

func TestCompletion(t *testing.T) {
	fs := flag.NewFlagSet("dsk", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "dsk")
	Register(commander)

	c := Completion(commander)
	require.Contains(t, c.Sub, "payments")
	assert.Contains(t, c.Sub["payments"].Flags, "p")
	assert.Contains(t, c.Sub["calendar"].Flags, "w")
	assert.NotNil(t, c.Sub["topic"].Args)
	assert.Contains(t, c.Flags, "portfolio")
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/divistack"
	"github.com/etnz/divistack/renderer"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	date string
	json bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the yearly dividend dashboard" }
func (*dashboardCmd) Usage() string {
	return `dsk dashboard [-d <date>] [-json]

  Displays the dividends of the year containing the date, after taxes, and
  the portfolio performance at its current prices.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", divistack.Today().String(), "Date in the year to report on. See the dates topic for supported formats.")
	f.BoolVar(&c.json, "json", false, "Print the dashboard as JSON")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, ok := parseDate(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	d := renderer.NewDashboard(p.Positions, allowance(p), on)
	if c.json {
		return printJSON(d)
	}
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}

// paymentsCmd holds the flags for the 'payments' subcommand.
type paymentsCmd struct {
	date   string
	period string
	json   bool
}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "list the taxed dividend payments of a period" }
func (*paymentsCmd) Usage() string {
	return `dsk payments [-d <date>] [-p <period>] [-json]

  Lists the dividend payments of the period containing the date, with their
  withholding and capital gains taxes.

  Taxes are computed over the whole year of each payment, so that a payment
  is taxed knowing the allowance used by the payments of its year before it.
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", divistack.Today().String(), "Date in the period to report on.")
	f.StringVar(&c.period, "p", "yearly", "Period to report on: daily, weekly, monthly, quarterly or yearly.")
	f.BoolVar(&c.json, "json", false, "Print the payments as JSON")
}

func (c *paymentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, ok := parseDate(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	period, err := divistack.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	payments := periodPayments(p.Positions, allowance(p), period.Range(on))
	if c.json {
		return printJSON(payments)
	}
	title := fmt.Sprintf("Dividends %s", period.Range(on))
	if period == divistack.Yearly {
		title = fmt.Sprintf("Dividends %d", on.Year())
	}
	printMarkdown(renderer.PaymentsMarkdown(title, payments))
	return subcommands.ExitSuccess
}

// periodPayments returns the payments within r, by date. Each year r overlaps
// is taxed on its own, with a fresh allowance, so that a payment knows the
// allowance used by the payments of its year before it.
func periodPayments(positions []divistack.Position, allowance float64, r divistack.Range) []divistack.DividendPayment {
	var payments []divistack.DividendPayment
	for year := range r.Periods(divistack.Yearly) {
		all, _ := divistack.PortfolioPayments(positions, year, allowance)
		payments = append(payments, slices.DeleteFunc(all, func(p divistack.DividendPayment) bool { return !r.Contains(p.Date) })...)
	}
	slices.SortStableFunc(payments, func(a, b divistack.DividendPayment) int { return a.Date.Compare(b.Date) })
	return payments
}

// calendarCmd holds the flags for the 'calendar' subcommand.
type calendarCmd struct {
	date   string
	window string
	json   bool
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "list the upcoming dividend payments" }
func (*calendarCmd) Usage() string {
	return `dsk calendar [-d <date>] [-w all|7d|30d|90d] [-json]

  Lists the payments after the date, within the window. Each position is
  taxed with the whole free allowance.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", divistack.Today().String(), "Date to look ahead from.")
	f.StringVar(&c.window, "w", string(divistack.WindowYear), "Window: all (a year), 7d, 30d or 90d.")
	f.BoolVar(&c.json, "json", false, "Print the payments as JSON")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, ok := parseDate(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	window, err := divistack.ParseCalendarWindow(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	upcoming := divistack.UpcomingPayments(p.Positions, window.Range(from), allowance(p))
	if c.json {
		return printJSON(upcoming)
	}
	printMarkdown(renderer.CalendarMarkdown(from, upcoming))
	return subcommands.ExitSuccess
}

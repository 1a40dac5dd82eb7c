package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/divistack"
	"github.com/etnz/divistack/renderer"
	"github.com/google/subcommands"
)

// dripCmd holds the flags for the 'drip' subcommand.
type dripCmd struct {
	scenario divistack.DRIPScenario
	compare  bool
	json     bool
}

func (*dripCmd) Name() string     { return "drip" }
func (*dripCmd) Synopsis() string { return "simulate a dividend reinvestment plan" }
func (*dripCmd) Usage() string {
	return `dsk drip [-initial <eur>] [-monthly <eur>] [-years <n>] [-yield <%>] [-growth <%>] [-price <eur>] [-dps <eur>] [-compare] [-json]

  Projects the reinvestment of quarterly dividends and monthly contributions,
  year by year. Defaults are the realistic preset.

  -compare simulates the conservative, realistic and optimistic presets instead.
`
}

func (c *dripCmd) SetFlags(f *flag.FlagSet) {
	def := divistack.DRIPPresets[1]
	f.Float64Var(&c.scenario.InitialInvestment, "initial", def.InitialInvestment, "Initial investment, in euro")
	f.Float64Var(&c.scenario.MonthlyContribution, "monthly", def.MonthlyContribution, "Monthly contribution, in euro")
	f.IntVar(&c.scenario.Years, "years", def.Years, "Number of years")
	f.Float64Var(&c.scenario.AverageYield, "yield", def.AverageYield, "Average dividend yield, in percent")
	f.Float64Var(&c.scenario.DividendGrowthRate, "growth", def.DividendGrowthRate, "Yearly dividend growth, in percent")
	f.Float64Var(&c.scenario.SharePrice, "price", def.SharePrice, "Share price, in euro")
	f.Float64Var(&c.scenario.DividendPerShare, "dps", def.DividendPerShare, "Quarterly dividend per share, in euro")
	f.BoolVar(&c.compare, "compare", false, "Compare the presets")
	f.BoolVar(&c.json, "json", false, "Print the results as JSON")
}

func (c *dripCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var results []divistack.ScenarioResults
	if c.compare {
		results = divistack.CompareDRIPScenarios(divistack.DRIPPresets)
	} else {
		if c.scenario.SharePrice <= 0 {
			fmt.Fprintln(os.Stderr, "Error: -price must be positive")
			return subcommands.ExitUsageError
		}
		if c.scenario.Years < 0 {
			fmt.Fprintln(os.Stderr, "Error: -years must not be negative")
			return subcommands.ExitUsageError
		}
		c.scenario.Name = "Custom"
		results = divistack.CompareDRIPScenarios([]divistack.DRIPScenario{c.scenario})
	}

	if c.json {
		return printJSON(results)
	}
	printMarkdown(renderer.DRIPMarkdown(results))
	return subcommands.ExitSuccess
}

// savingsCmd holds the flags for the 'savings' subcommand.
type savingsCmd struct {
	goal    divistack.SavingsPlanGoal
	compare bool
	json    bool
}

func (*savingsCmd) Name() string     { return "savings" }
func (*savingsCmd) Synopsis() string { return "find the monthly savings reaching a dividend income" }
func (*savingsCmd) Usage() string {
	return `dsk savings -target <eur> [-years <n>] [-yield <%>] [-growth <%>] [-initial <eur>] [-compare] [-json]

  Finds the monthly contribution, within 0.10 EUR, that earns the target
  yearly dividend after the given years.

  -compare solves the goal under the conservative, realistic and optimistic
  yield scenarios.
`
}

func (c *savingsCmd) SetFlags(f *flag.FlagSet) {
	def := divistack.YieldScenarios[1]
	f.Float64Var(&c.goal.TargetAnnualDividend, "target", 12000, "Target yearly dividend, in euro")
	f.IntVar(&c.goal.Years, "years", 20, "Number of years")
	f.Float64Var(&c.goal.AverageYield, "yield", def.AverageYield, "Average dividend yield, in percent")
	f.Float64Var(&c.goal.DividendGrowthRate, "growth", def.DividendGrowthRate, "Yearly dividend growth, in percent")
	f.Float64Var(&c.goal.InitialInvestment, "initial", 0, "Initial investment, in euro")
	f.BoolVar(&c.compare, "compare", false, "Compare the yield scenarios")
	f.BoolVar(&c.json, "json", false, "Print the plan as JSON")
}

func (c *savingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goal.TargetAnnualDividend < 0 || c.goal.Years < 0 {
		fmt.Fprintln(os.Stderr, "Error: -target and -years must not be negative")
		return subcommands.ExitUsageError
	}

	if c.compare {
		plans := divistack.CompareSavingsPlans(c.goal, divistack.YieldScenarios)
		if c.json {
			return printJSON(plans)
		}
		printMarkdown(renderer.SavingsPlansMarkdown(plans))
		return subcommands.ExitSuccess
	}

	plan := divistack.SolveSavingsPlan(c.goal)
	if c.json {
		return printJSON(plan)
	}
	printMarkdown(renderer.SavingsPlanMarkdown(c.goal, plan))
	return subcommands.ExitSuccess
}

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	monthly float64
	date    string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "measure the net dividends against a monthly goal" }
func (*goalCmd) Usage() string {
	return `dsk goal -monthly <eur> [-d <date>]

  Compares the average monthly net dividend of the year to a goal.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly net dividend goal, in euro (required)")
	f.StringVar(&c.date, "d", divistack.Today().String(), "Date in the year to measure.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.monthly <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -monthly must be positive")
		return subcommands.ExitUsageError
	}
	on, ok := parseDate(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	stats := divistack.NewDashboardStats(p.Positions, allowance(p), on)
	printMarkdown(renderer.GoalMarkdown(divistack.NewGoalProgress(c.monthly, stats.AverageMonthlyNet, stats.TotalNetAnnual)))
	return subcommands.ExitSuccess
}

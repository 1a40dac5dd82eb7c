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

// optimizeCmd holds the flags for the 'optimize' subcommand.
type optimizeCmd struct {
	allowance float64
}

func (*optimizeCmd) Name() string     { return "optimize" }
func (*optimizeCmd) Synopsis() string { return "suggest how to split the free allowance" }
func (*optimizeCmd) Usage() string {
	return `dsk optimize [-a <eur>]

  Suggests a free allowance (Freistellungsauftrag) per position, the most
  taxed positions first, each up to its yearly gross dividend.
`
}

func (c *optimizeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.allowance, "a", -1, "Free allowance to split. Defaults to the portfolio's.")
}

func (c *optimizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	a := c.allowance
	if a < 0 {
		a = allowance(p)
	}
	printMarkdown(renderer.AllowancePlanMarkdown(divistack.OptimizeAllowance(p.Positions, a)))
	return subcommands.ExitSuccess
}

// vorabCmd holds the flags for the 'vorab' subcommand.
type vorabCmd struct {
	fund divistack.FundYear
}

func (*vorabCmd) Name() string     { return "vorab" }
func (*vorabCmd) Synopsis() string { return "compute the Vorabpauschale of an accumulating fund" }
func (*vorabCmd) Usage() string {
	return `dsk vorab -start <eur> -end <eur> -basiszins <%> [-dist <eur>] [-year <year>]

  Computes the advance lump-sum tax of a fund over a year.
`
}

func (c *vorabCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.fund.Year, "year", divistack.Today().Year()-1, "Tax year")
	f.Float64Var(&c.fund.StartValue, "start", 0, "Fund value at the start of the year, in euro")
	f.Float64Var(&c.fund.EndValue, "end", 0, "Fund value at the end of the year, in euro")
	f.Float64Var(&c.fund.Distributions, "dist", 0, "Distributions of the year, in euro")
	f.Float64Var(&c.fund.Basiszins, "basiszins", 0, "Base interest rate of the year, in percent")
}

func (c *vorabCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund.StartValue < 0 || c.fund.EndValue < 0 {
		fmt.Fprintln(os.Stderr, "Error: fund values must not be negative")
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.VorabpauschaleMarkdown(c.fund, divistack.NewVorabpauschale(c.fund)))
	return subcommands.ExitSuccess
}

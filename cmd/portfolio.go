package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/divistack"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the portfolio file"
}
func (*fmtCmd) Usage() string {
	return `dsk fmt [-check]

  Validates the portfolio file and writes it back in a canonical form: new
  positions get an id, euro positions an exchange rate of 1, and a missing
  tax configuration is set to the default one.

  Positions and payment dates are never reordered: their order is the order
  the free allowance is used in.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Only validate, do not write the file")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	p.Fmt()
	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid portfolio %q:\n%v\n", cfg.PortfolioFile, err)
		return subcommands.ExitFailure
	}
	if c.check {
		fmt.Fprintf(os.Stderr, "✅ Portfolio %q is valid.\n", cfg.PortfolioFile)
		return subcommands.ExitSuccess
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio %q: %v\n", cfg.PortfolioFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q.\n", cfg.PortfolioFile)
	return subcommands.ExitSuccess
}

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update the current prices of the positions" }
func (*updateCmd) Usage() string {
	return `dsk update

  Reads the price of every position with a ticker from the configured quote
  service, and saves them in the portfolio file. Responses are cached for the
  day.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Quote.GetTimeout())
	defer cancel()

	src := divistack.QuoteSource{URL: cfg.Quote.URL, Path: cfg.Quote.Path}
	n, err := divistack.UpdatePrices(ctx, divistack.DailyClient(), p.Positions, src, divistack.Today())
	if err != nil {
		log.Warn().Err(err).Int("updated", n).Msg("some prices could not be updated")
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr, "No price updated.")
		if err != nil {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio %q: %v\n", cfg.PortfolioFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Updated %d prices.\n", n)
	return subcommands.ExitSuccess
}

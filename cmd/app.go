// Package cmd implements the dsk subcommands.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/divistack"
	"github.com/etnz/divistack/config"
	"github.com/etnz/divistack/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&paymentsCmd{}, "reports")
	c.Register(&calendarCmd{}, "reports")

	c.Register(&optimizeCmd{}, "taxes")
	c.Register(&vorabCmd{}, "taxes")

	c.Register(&dripCmd{}, "simulations")
	c.Register(&savingsCmd{}, "simulations")
	c.Register(&goalCmd{}, "simulations")

	c.Register(&fmtCmd{}, "portfolio")
	c.Register(&updateCmd{}, "portfolio")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile    = flag.String("config", "", "TOML configuration file, read after the user configuration")
	portfolioFile = flag.String("portfolio", "", "Portfolio file (JSON), overrides the configuration")
	verbose       = flag.Bool("v", false, "Enable debug logs")
	rawMarkdown   = flag.Bool("md", false, "Print reports as raw markdown")
)

// cfg is the configuration loaded by Init.
var cfg = config.NewDefaultConfig()

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// Init loads the configuration and sets the global logger up. It must be
// called once the flags are parsed.
func Init() error {
	if *configFile != "" {
		if _, err := os.Stat(*configFile); err != nil {
			return fmt.Errorf("configuration file: %w", err)
		}
	}
	c, err := config.LoadConfig(config.DefaultPath(), *configFile)
	if err != nil {
		return err
	}
	if *portfolioFile != "" {
		c.PortfolioFile = *portfolioFile
	}

	level := c.Logging.Level
	if *verbose {
		level = "debug"
	}
	logger.SetGlobalLogger(logger.New(logger.Config{Level: level, Pretty: c.Logging.Pretty}))

	cfg = c
	log.Debug().Str("portfolio", cfg.PortfolioFile).Float64("allowance", cfg.FreeAllowance).Msg("configuration loaded")
	return nil
}

// DecodePortfolio loads the configured portfolio file.
func DecodePortfolio() (*divistack.Portfolio, error) {
	p, err := divistack.LoadPortfolio(cfg.PortfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("portfolio file %q does not exist, use -portfolio or the configuration to set it", cfg.PortfolioFile)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", cfg.PortfolioFile).Int("positions", len(p.Positions)).Msg("portfolio loaded")
	return p, nil
}

// EncodePortfolio saves the portfolio into the configured portfolio file.
func EncodePortfolio(p *divistack.Portfolio) error {
	return divistack.SavePortfolio(cfg.PortfolioFile, p)
}

// allowance returns the free allowance of the portfolio, the configured one by default.
func allowance(p *divistack.Portfolio) float64 { return p.Allowance(cfg.FreeAllowance) }

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Warn().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Warn().Err(err).Msg("cannot render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// printJSON writes v as indented JSON.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseDate parses a date flag, reporting errors on stderr.
func parseDate(s string) (divistack.Date, bool) {
	on, err := divistack.ParseDate(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return divistack.Date{}, false
	}
	return on, true
}

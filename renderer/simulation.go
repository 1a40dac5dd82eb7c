package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/divistack"
	md "github.com/nao1215/markdown"
)

// DRIPMarkdown renders reinvestment plans: a comparison of the final years
// when there are several, and the yearly projection of each.
func DRIPMarkdown(scenarios []divistack.ScenarioResults) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Dividend Reinvestment")

	if len(scenarios) > 1 {
		doc.H2("Comparison")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Scenario", "Invested", "Value", "Annual Dividend"},
		}
		for _, s := range scenarios {
			final := s.Final()
			table.Rows = append(table.Rows, []string{
				s.Name,
				divistack.EUR(final.TotalInvested).String(),
				divistack.EUR(final.PortfolioValue).String(),
				divistack.EUR(final.AnnualDividend).String(),
			})
		}
		doc.Table(table)
	}

	for _, s := range scenarios {
		if s.Name != "" {
			doc.H2(s.Name)
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Year", "Shares", "Invested", "Value", "Dividend"},
		}
		for _, r := range s.Results {
			table.Rows = append(table.Rows, []string{
				fmt.Sprint(r.Year),
				fmt.Sprintf("%.2f", r.Shares),
				divistack.EUR(r.TotalInvested).String(),
				divistack.EUR(r.PortfolioValue).String(),
				divistack.EUR(r.AnnualDividend).String(),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}

// SavingsPlanMarkdown renders the monthly savings needed to reach a goal.
func SavingsPlanMarkdown(g divistack.SavingsPlanGoal, r divistack.SavingsPlanResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Savings Plan")

	doc.PlainText(fmt.Sprintf("To earn %s of dividends a year in %d years, at %.2f%% yield and %.2f%% dividend growth:",
		divistack.EUR(g.TargetAnnualDividend), g.Years, g.AverageYield, g.DividendGrowthRate))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Monthly Savings"), md.Bold(divistack.EUR(r.RequiredMonthlyContribution).String())},
		Rows: [][]string{
			{"Initial Investment", divistack.EUR(g.InitialInvestment).String()},
			{"Total Invested", divistack.EUR(r.TotalInvested).String()},
			{"Final Value", divistack.EUR(r.FinalPortfolioValue).String()},
			{"Final Annual Dividend", divistack.EUR(r.FinalAnnualDividend).String()},
		},
	})
	if !r.Reached(g) {
		doc.PlainText(md.Bold("The goal cannot be reached within the search bounds: the contribution above is only an upper estimate."))
	}

	if len(r.YearlyBreakdown) > 0 {
		doc.H2("Yearly Breakdown")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Year", "Value", "Annual Dividend"},
		}
		for _, y := range r.YearlyBreakdown {
			table.Rows = append(table.Rows, []string{
				fmt.Sprint(y.Year),
				divistack.EUR(y.PortfolioValue).String(),
				divistack.EUR(y.AnnualDividend).String(),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}

// SavingsPlansMarkdown renders the monthly savings a goal needs under
// several yield scenarios.
func SavingsPlansMarkdown(plans []divistack.SavingsPlanComparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Scenarios")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Scenario", "Yield", "Growth", "Monthly Savings"},
	}
	for _, p := range plans {
		table.Rows = append(table.Rows, []string{
			p.Scenario.Name,
			divistack.Percent(p.Scenario.AverageYield).String(),
			divistack.Percent(p.Scenario.DividendGrowthRate).String(),
			divistack.EUR(p.Plan.RequiredMonthlyContribution).String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

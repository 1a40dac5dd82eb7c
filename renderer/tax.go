package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/divistack"
	md "github.com/nao1215/markdown"
)

// AllowancePlanMarkdown renders the suggested distribution of the free
// allowance.
func AllowancePlanMarkdown(plan divistack.AllowancePlan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Free Allowance Optimization")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Position", "Country", "Gross", "Withholding", "Allowance", "Savings"},
	}
	for _, s := range plan.Suggestions {
		table.Rows = append(table.Rows, []string{
			s.PositionName,
			s.Country,
			divistack.EUR(s.GrossAnnualDividend).String(),
			fmt.Sprintf("%s (%s)", divistack.EUR(s.WithholdingTax), divistack.Percent(s.WithholdingRate*100)),
			divistack.EUR(s.SuggestedFSA).String(),
			divistack.EUR(s.TaxSavings).String(),
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Tax Savings"), md.Bold(divistack.EUR(plan.TotalTaxSavings).String())},
		Rows: [][]string{
			{"Allowance Used", divistack.EUR(plan.UsedAllowance).String()},
			{"Allowance Left", divistack.EUR(plan.RemainingAllowance).String()},
			{"Withholding Tax", divistack.EUR(plan.TotalWithholdingTax).String()},
		},
	})
	return doc.String()
}

// VorabpauschaleMarkdown renders the advance lump-sum tax of a fund.
func VorabpauschaleMarkdown(f divistack.FundYear, v divistack.Vorabpauschale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	if f.Year != 0 {
		doc.H1(fmt.Sprintf("Vorabpauschale %d", f.Year))
	} else {
		doc.H1("Vorabpauschale")
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Item", "Amount"},
		Rows: [][]string{
			{"Start Value", divistack.EUR(f.StartValue).String()},
			{"End Value", divistack.EUR(f.EndValue).String()},
			{"Gain", divistack.EUR(v.Gain).SignedString()},
			{"Distributions", divistack.EUR(f.Distributions).String()},
			{fmt.Sprintf("Basisertrag (%.2f%%)", f.Basiszins), divistack.EUR(v.Basisertrag).String()},
			{md.Bold("Vorabpauschale"), md.Bold(divistack.EUR(v.Amount).String())},
			{"Flat Tax", divistack.EUR(v.FlatTax).String()},
			{"Solidarity Surcharge", divistack.EUR(v.Solidarity).String()},
			{md.Bold("Total Tax"), md.Bold(divistack.EUR(v.TotalTax).String())},
			{"Effective Rate on Gain", v.EffectiveRate.String()},
		},
	})
	return doc.String()
}

// GoalMarkdown renders the progress toward a monthly dividend goal.
func GoalMarkdown(g divistack.GoalProgress) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Dividend Goal")

	doc.PlainText(fmt.Sprintf("%s %s of %s a month.", progressBar(g.Progress), g.Progress, divistack.EUR(g.MonthlyGoal)))
	if g.Reached() {
		doc.PlainText(md.Bold("Goal reached."))
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Goal", "Amount"},
		Rows: [][]string{
			{"Monthly Remaining", divistack.EUR(g.MonthlyRemaining).String()},
			{"Annual Goal", divistack.EUR(g.AnnualGoal).String()},
			{"Annual Remaining", divistack.EUR(g.AnnualRemaining).String()},
		},
	})
	return doc.String()
}

// progressBar draws a 20 characters progress bar, full above 100%.
func progressBar(p divistack.Percent) string {
	const width = 20
	n := int(float64(p) / 100 * width)
	n = max(0, min(width, n))
	bar := make([]rune, width)
	for i := range bar {
		bar[i] = '░'
		if i < n {
			bar[i] = '█'
		}
	}
	return "`" + string(bar) + "`"
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/divistack"
	md "github.com/nao1215/markdown"
)

// PaymentsMarkdown renders taxed payments, followed by their monthly totals.
func PaymentsMarkdown(title string, payments []divistack.DividendPayment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)

	if len(payments) == 0 {
		doc.PlainText("No dividend payment.")
		return doc.String()
	}

	doc.Table(paymentsTable(payments))

	var gross, withholding, capitalGains, net float64
	for _, p := range payments {
		gross += p.GrossAmount
		withholding += p.WithholdingTax
		capitalGains += p.CapitalGainsTax
		net += p.NetAmount
	}
	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Total", "Amount"},
		Rows: [][]string{
			{"Gross", divistack.EUR(gross).String()},
			{"Withholding Tax", divistack.EUR(withholding).String()},
			{"Capital Gains Tax", divistack.EUR(capitalGains).String()},
			{md.Bold("Net"), md.Bold(divistack.EUR(net).String())},
		},
	})

	months := divistack.GroupPaymentsByMonth(payments)
	if len(months) > 1 {
		doc.H2("By Month")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Month", "Gross", "Net"},
		}
		for _, m := range months {
			table.Rows = append(table.Rows, []string{m.Key(), divistack.EUR(m.Gross).String(), divistack.EUR(m.Net).String()})
		}
		doc.Table(table)
	}
	return doc.String()
}

// CalendarMarkdown renders the upcoming payments seen from 'from'.
func CalendarMarkdown(from divistack.Date, upcoming []divistack.DividendPayment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Dividend Calendar")

	if len(upcoming) == 0 {
		doc.PlainText(fmt.Sprintf("No dividend payment after %s.", from))
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "In", "Position", "Gross", "Net"},
	}
	var net float64
	for _, p := range upcoming {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			days(from.DaysUntil(p.Date)),
			p.PositionName,
			divistack.EUR(p.GrossAmount).String(),
			divistack.EUR(p.NetAmount).String(),
		})
		net += p.NetAmount
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d payments, %s net.", len(upcoming), divistack.EUR(net)))
	return doc.String()
}

func days(n int) string {
	switch n {
	case 0:
		return "today"
	case 1:
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func paymentsTable(payments []divistack.DividendPayment) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Position", "Gross", "Withholding", "Capital Gains", "Net"},
	}
	for _, p := range payments {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.PositionName,
			divistack.EUR(p.GrossAmount).String(),
			divistack.EUR(p.WithholdingTax).String(),
			divistack.EUR(p.CapitalGainsTax).String(),
			divistack.EUR(p.NetAmount).String(),
		})
	}
	return table
}

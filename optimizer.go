package divistack

import (
	"cmp"
	"slices"
)

// AllowanceSuggestion is the share of the free allowance suggested for a position.
type AllowanceSuggestion struct {
	PositionID          string
	PositionName        string
	Country             string
	GrossAnnualDividend float64
	WithholdingRate     float64
	WithholdingTax      float64
	// TaxLoad is the yearly tax paid on the position without allowance.
	TaxLoad      float64
	SuggestedFSA float64
	TaxSavings   float64
}

// AllowancePlan distributes a free allowance over the positions.
type AllowancePlan struct {
	Suggestions         []AllowanceSuggestion
	TotalTaxSavings     float64
	TotalWithholdingTax float64
	UsedAllowance       float64
	RemainingAllowance  float64
}

// OptimizeAllowance suggests how to spread the free allowance across
// positions, most taxed positions first.
//
// Each position's yearly gross is one payment per declared payment date. Its
// tax load is the withholding tax plus the domestic tax on what is left
// after withholding, less the creditable withholding tax. The allowance is
// then given to positions by decreasing tax load, up to their gross, and each
// allocated euro saves the domestic tax rate.
func OptimizeAllowance(positions []Position, freeAllowance float64) AllowancePlan {
	suggestions := make([]AllowanceSuggestion, len(positions))
	for i, p := range positions {
		gross := p.GrossPerPayment() * float64(len(p.PaymentDates))
		rate := WithholdingRate(p.Country)
		withholding := gross * rate

		domestic := (gross - withholding) * CapitalGainsTaxRate
		domestic -= min(withholding, domestic)

		suggestions[i] = AllowanceSuggestion{
			PositionID:          p.ID,
			PositionName:        p.Name,
			Country:             p.Country,
			GrossAnnualDividend: gross,
			WithholdingRate:     rate,
			WithholdingTax:      withholding,
			TaxLoad:             withholding + domestic,
		}
	}
	slices.SortStableFunc(suggestions, func(a, b AllowanceSuggestion) int { return cmp.Compare(b.TaxLoad, a.TaxLoad) })

	plan := AllowancePlan{Suggestions: suggestions}
	remaining := freeAllowance
	for i := range suggestions {
		s := &suggestions[i]
		plan.TotalWithholdingTax += s.WithholdingTax
		if remaining <= 0 {
			continue
		}
		s.SuggestedFSA = min(remaining, s.GrossAnnualDividend)
		s.TaxSavings = s.SuggestedFSA * CapitalGainsTaxRate
		remaining -= s.SuggestedFSA

		plan.TotalTaxSavings += s.TaxSavings
		plan.UsedAllowance += s.SuggestedFSA
	}
	plan.RemainingAllowance = freeAllowance - plan.UsedAllowance
	return plan
}

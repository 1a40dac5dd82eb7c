package divistack

// CapitalGainsTaxRate is the German flat tax on capital income (Abgeltungsteuer):
// 25% plus the 5.5% solidarity surcharge on that tax.
const CapitalGainsTaxRate = 0.26375

// withholdingTaxRates are the source tax rates applied by the paying country,
// after double taxation agreements.
var withholdingTaxRates = map[string]float64{
	"DE": 0,
	"US": 0.15,
	"CH": 0.35,
	"GB": 0,
	"FR": 0.12,
	"NL": 0.15,
	"AT": 0.275,
	"IE": 0,
}

// WithholdingRate returns the source tax rate of a country. Unknown countries
// withhold nothing.
func WithholdingRate(country string) float64 {
	return withholdingTaxRates[country]
}

// TaxResult is a gross dividend split into taxes and net amount.
//
// Net + WithholdingTax + CapitalGainsTax always equals Gross.
type TaxResult struct {
	Gross           float64
	WithholdingTax  float64
	CapitalGainsTax float64
	Net             float64
}

// NetDividend applies the dividend tax waterfall to a gross amount.
//
// The source country withholds its tax on the gross amount first. The free
// allowance then reduces the domestic taxable base (never the withholding
// tax). The domestic tax on that base is reduced by the withholding tax, down
// to zero: excess foreign tax is neither refunded nor carried forward.
func NetDividend(gross float64, country string, allowanceRemaining float64) TaxResult {
	withholding := gross * WithholdingRate(country)

	taxable := gross
	if allowanceRemaining > 0 {
		taxable -= min(taxable, allowanceRemaining)
	}

	domestic := taxable * CapitalGainsTaxRate
	credit := min(withholding, domestic)
	capitalGains := max(0, domestic-credit)

	return TaxResult{
		Gross:           gross,
		WithholdingTax:  withholding,
		CapitalGainsTax: capitalGains,
		Net:             gross - withholding - capitalGains,
	}
}

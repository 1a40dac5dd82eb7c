package divistack

// partialExemption is the share of the base return subject to the
// Vorabpauschale (70%).
const partialExemption = 0.7

const (
	flatTaxRate    = 0.25
	solidarityRate = 0.055
)

// FundYear describes an accumulating fund over a tax year.
type FundYear struct {
	Year          int
	StartValue    float64
	EndValue      float64
	Distributions float64
	// Basiszins is the base interest rate of the year, in percent.
	Basiszins float64
}

// Vorabpauschale is the advance lump-sum tax of a fund for a year.
type Vorabpauschale struct {
	Basisertrag   float64
	Gain          float64
	Amount        float64
	FlatTax       float64
	Solidarity    float64
	TotalTax      float64
	EffectiveRate Percent // of the gain
}

// NewVorabpauschale computes the German advance lump-sum taxation of a fund.
//
// The base return is 70% of the start value at the base interest rate, capped
// by the actual gain and reduced by the distributions of the year. The flat
// tax and its solidarity surcharge apply to what is left.
func NewVorabpauschale(f FundYear) Vorabpauschale {
	v := Vorabpauschale{
		Basisertrag: f.StartValue * (f.Basiszins / 100) * partialExemption,
		Gain:        f.EndValue - f.StartValue,
	}
	v.Amount = max(0, min(v.Basisertrag, v.Gain)-f.Distributions)
	v.FlatTax = v.Amount * flatTaxRate
	v.Solidarity = v.FlatTax * solidarityRate
	v.TotalTax = v.FlatTax + v.Solidarity
	if v.Gain > 0 {
		v.EffectiveRate = Percent(v.TotalTax / v.Gain * 100)
	}
	return v
}

package divistack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// FileVersion is the version written in portfolio files.
const FileVersion = "1.0"

// Portfolio is the content of a portfolio file.
type Portfolio struct {
	Positions  []Position `json:"positions"`
	TaxConfig  *TaxConfig `json:"taxConfig,omitempty"`
	ExportDate time.Time  `json:"exportDate,omitzero"`
	Version    string     `json:"version,omitempty"`
}

// Allowance returns the free allowance of the portfolio, or def when the file
// has no tax configuration.
func (p *Portfolio) Allowance(def float64) float64 {
	if p.TaxConfig == nil {
		return def
	}
	return p.TaxConfig.FreeAllowance
}

// DecodePortfolio reads a portfolio in the JSON backup format.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("cannot decode portfolio: %w", err)
	}
	return &p, nil
}

// EncodePortfolio writes the portfolio in the JSON backup format, stamped
// with the current time and file version.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	out := *p
	out.ExportDate = time.Now().UTC().Truncate(time.Second)
	out.Version = FileVersion
	if out.Positions == nil {
		out.Positions = []Position{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("cannot encode portfolio: %w", err)
	}
	return nil
}

// LoadPortfolio reads a portfolio file.
func LoadPortfolio(name string) (*Portfolio, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// SavePortfolio writes the portfolio file, replacing it atomically.
func SavePortfolio(name string, p *Portfolio) error {
	tmp := name + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := EncodePortfolio(f, p); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, name)
}

// Validate reports every inconsistent position.
//
// The computations accept any input, Validate is for tools editing the file.
func (p *Portfolio) Validate() error {
	var errs []error
	for i, pos := range p.Positions {
		where := fmt.Sprintf("position #%d %q", i+1, pos.Name)
		if pos.Name == "" {
			errs = append(errs, fmt.Errorf("position #%d: empty name", i+1))
		}
		if pos.Quantity <= 0 {
			errs = append(errs, fmt.Errorf("%s: quantity must be positive, got %v", where, pos.Quantity))
		}
		if pos.Currency != BaseCurrency && pos.ExchangeRate <= 0 {
			errs = append(errs, fmt.Errorf("%s: exchange rate must be positive, got %v", where, pos.ExchangeRate))
		}
		if pos.PurchaseDate.IsZero() {
			errs = append(errs, fmt.Errorf("%s: missing purchase date", where))
		}
		for j, d := range pos.PaymentDates {
			if d.IsZero() {
				errs = append(errs, fmt.Errorf("%s: missing payment date #%d", where, j+1))
			}
		}
		if _, err := ParsePaymentInterval(string(pos.PaymentInterval)); pos.PaymentInterval != "" && err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
	}
	if p.TaxConfig != nil && p.TaxConfig.FreeAllowance < 0 {
		errs = append(errs, fmt.Errorf("negative free allowance %v", p.TaxConfig.FreeAllowance))
	}
	return errors.Join(errs...)
}

// Fmt normalizes the portfolio in place.
//
// Positions get an id when they have none and euro positions an exchange rate
// of 1. Payment dates keep their order, it decides which payment uses the
// free allowance first.
func (p *Portfolio) Fmt() {
	for i := range p.Positions {
		pos := &p.Positions[i]
		if pos.ID == "" {
			pos.ID = uuid.NewString()
		}
		if pos.Currency == "" {
			pos.Currency = BaseCurrency
		}
		if pos.Currency == BaseCurrency {
			pos.ExchangeRate = 1
		}
	}
	if p.TaxConfig == nil {
		tc := DefaultTaxConfig
		p.TaxConfig = &tc
	}
}

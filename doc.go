// Package divistack computes the dividend income of a personal portfolio
// under German taxation.
//
// The core functionalities include:
//   - Tax Waterfall: foreign withholding tax, the yearly free allowance
//     (Freistellungsauftrag) and the domestic capital gains tax with its
//     withholding credit, see [NetDividend].
//   - Payment Schedule: taxed dividend payments of positions over a date
//     range, the allowance being used in the order payments are declared,
//     see [ExpandPayments] and [PortfolioPayments].
//   - Dashboard: yearly totals, performance, sector allocation and yields.
//   - Simulations: dividend reinvestment plans ([SimulateDRIP]) and the
//     monthly savings needed to reach a dividend income ([SolveSavingsPlan]).
//   - Tax Tools: allowance distribution ([OptimizeAllowance]) and the
//     Vorabpauschale of accumulating funds.
//
// All computations are pure functions over float64 values: they never fail
// and never validate their inputs, invalid amounts (a zero exchange rate for
// instance) propagate as NaN or infinities.
//
// This package serves as the foundational logic for the `dsk` command-line
// tool, that reads positions from a JSON portfolio file.
package divistack

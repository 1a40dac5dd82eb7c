package divistack

import "fmt"

// CalendarWindow is how far ahead the dividend calendar looks.
type CalendarWindow string

const (
	WindowYear    CalendarWindow = "all"
	Window7Days   CalendarWindow = "7d"
	Window30Days  CalendarWindow = "30d"
	Window90Days  CalendarWindow = "90d"
	defaultWindow                = WindowYear
)

// ParseCalendarWindow parses a window name, an empty string being the full year.
func ParseCalendarWindow(s string) (CalendarWindow, error) {
	switch w := CalendarWindow(s); w {
	case "":
		return defaultWindow, nil
	case WindowYear, Window7Days, Window30Days, Window90Days:
		return w, nil
	default:
		return "", fmt.Errorf("unknown calendar window %q, want one of all, 7d, 30d, 90d", s)
	}
}

// Range returns the dates covered by the window starting on 'from'.
func (w CalendarWindow) Range(from Date) Range {
	switch w {
	case Window7Days:
		return NewRange(from, from.Add(7))
	case Window30Days:
		return NewRange(from, from.Add(30))
	case Window90Days:
		return NewRange(from, from.Add(90))
	default:
		return NewRange(from, from.AddMonth(12))
	}
}

// UpcomingPayments lists the payments of all positions strictly after r.From
// and up to r.To, by date.
//
// Unlike the yearly statistics, each position is taxed with the full
// allowance: the calendar shows what a single payment would net on its own.
func UpcomingPayments(positions []Position, r Range, allowance float64) []DividendPayment {
	var upcoming []DividendPayment
	for _, p := range positions {
		for _, payment := range Payments(p, r, allowance) {
			if payment.Date.After(r.From) {
				upcoming = append(upcoming, payment)
			}
		}
	}
	sortPayments(upcoming)
	return upcoming
}

// NextPayment returns the first payment after 'on' until the end of its year.
func NextPayment(positions []Position, on Date, allowance float64) (DividendPayment, bool) {
	upcoming := UpcomingPayments(positions, NewRange(on, on.EndOf(Yearly)), allowance)
	if len(upcoming) == 0 {
		return DividendPayment{}, false
	}
	return upcoming[0], true
}

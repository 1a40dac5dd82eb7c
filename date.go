package divistack

import (
	"encoding/json"
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the ISO-8601 layout dates are written with.
const DateFormat = "2006-01-02"

// lenientDateFormat also reads single digit months and days.
const lenientDateFormat = "2006-1-2"

// Date is a calendar day, without time zone.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns the normalized date, so that NewDate(2025, 2, 30) is March 2nd.
func NewDate(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Today returns the current local date.
func Today() Date { return NewDate(time.Now().Date()) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero reports whether d is the zero Date, used for missing dates.
func (d Date) IsZero() bool { return d == Date{} }

// time returns midnight UTC of that day.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) String() string { return d.Format(DateFormat) }

// Format formats the date with a [time.Format] layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

func (d Date) Before(x Date) bool  { return d.Compare(x) < 0 }
func (d Date) After(x Date) bool   { return d.Compare(x) > 0 }
func (d Date) Compare(x Date) int  { return d.time().Compare(x.time()) }
func (d Date) Add(days int) Date   { return NewDate(d.y, d.m, d.d+days) }
func (d Date) AddMonth(n int) Date { return NewDate(d.y, d.m+time.Month(n), d.d) }

// DaysUntil returns the number of days from d to x, negative if x is before d.
func (d Date) DaysUntil(x Date) int { return int(x.time().Sub(d.time()).Hours() / 24) }

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(p Period) Date { return p.Range(d).From }

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date { return p.Range(d).To }

// relativeDate matches dates relative to today, like "-1d" or "+2q".
var relativeDate = regexp.MustCompile(`^([+-])(\d+)([dwmqy])$`)

// ParseDate parses a date for the command line.
//
// Besides ISO dates, read leniently ("2025-7-1"), and timestamps (only the day
// is kept), it accepts "0d" for today and offsets from today in days, weeks,
// months, quarters or years: "-1d", "+2w", "-3m", "+1q", "-1y".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "0d" {
		return Today(), nil
	}
	m := relativeDate.FindStringSubmatch(str)
	if m == nil {
		return parseISODate(str)
	}

	n, err := strconv.Atoi(m[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid relative date %q: %w", str, err)
	}
	if m[1] == "-" {
		n = -n
	}
	today := Today()
	switch m[3] {
	case "w":
		return today.Add(7 * n), nil
	case "m":
		return today.AddMonth(n), nil
	case "q":
		return today.AddMonth(3 * n), nil
	case "y":
		return today.AddMonth(12 * n), nil
	default:
		return today.Add(n), nil
	}
}

// parseISODate parses an ISO date or an RFC 3339 timestamp.
func parseISODate(str string) (Date, error) {
	on, err := time.Parse(lenientDateFormat, str)
	if err != nil {
		// Backups of the web application hold full timestamps.
		on, err = time.Parse(time.RFC3339, str)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q", str, DateFormat)
	}
	return NewDate(on.Date()), nil
}

// MustParse is like ParseDate but panics on error.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err)
	}
	return d
}

// UnmarshalJSON reads an ISO date, an empty string being the zero Date.
// Relative dates are rejected.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	on, err := parseISODate(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}

// MarshalJSON writes the ISO date, or an empty string for the zero Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.String())
}

// Range is the days from From to To, both included.
type Range struct{ From, To Date }

// NewRange returns the range between two dates, in any order.
func NewRange(from, to Date) Range {
	if from.After(to) {
		return Range{to, from}
	}
	return Range{from, to}
}

func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }
func (r Range) String() string       { return r.From.String() + ".." + r.To.String() }

// Periods iterates over the consecutive periods overlapping r.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for on := r.From; !on.After(r.To); {
			period := p.Range(on)
			if !yield(period) {
				return
			}
			on = period.To.Add(1)
		}
	}
}

// Period is a calendar period. Weeks start on Monday.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

var periodNames = []string{"daily", "weekly", "monthly", "quarterly", "yearly"}

func (p Period) String() string {
	if p < Daily || p > Yearly {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p]
}

// Range returns the period containing d.
func (p Period) Range(d Date) Range {
	switch p {
	case Weekly:
		monday := d.Add(-((int(d.time().Weekday()) + 6) % 7))
		return Range{monday, monday.Add(6)}
	case Monthly:
		first := NewDate(d.y, d.m, 1)
		return Range{first, first.AddMonth(1).Add(-1)}
	case Quarterly:
		first := NewDate(d.y, d.m-(d.m-1)%3, 1)
		return Range{first, first.AddMonth(3).Add(-1)}
	case Yearly:
		return Range{NewDate(d.y, time.January, 1), NewDate(d.y, time.December, 31)}
	default:
		return Range{d, d}
	}
}

var periodAliases = map[string]Period{
	"day": Daily, "week": Weekly, "month": Monthly, "quarter": Quarterly, "year": Yearly,
}

// ParsePeriod parses a period name, "monthly" or "month" for instance.
func ParsePeriod(s string) (Period, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if p, ok := periodAliases[name]; ok {
		return p, nil
	}
	for i, n := range periodNames {
		if name == n {
			return Period(i), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q", s)
}

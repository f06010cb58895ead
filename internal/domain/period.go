package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is one accounting month, identified by (Number, Year).
type Period struct {
	ID        int64
	Number    int
	Month     int
	Year      int
	StartDate time.Time
	EndDate   time.Time
	IsCurrent bool
}

// Key returns the ledger key of the period.
func (p Period) Key() PeriodKey {
	return NewPeriodKey(p.Number, p.Year)
}

// Compare orders periods by (year, period number).
func (p Period) Compare(other Period) int {
	return comparePeriodParts(p.Number, p.Year, other.Number, other.Year)
}

// Before reports whether p comes strictly before other.
func (p Period) Before(other Period) bool {
	return p.Compare(other) < 0
}

// Contains reports whether t falls inside the period's calendar bounds.
func (p Period) Contains(t time.Time) bool {
	d := truncateDay(t)
	return !d.Before(truncateDay(p.StartDate)) && !d.After(truncateDay(p.EndDate))
}

// PeriodKey is the "MM-YYYY" identity of a period inside ledger rows.
// Compare keys with Compare, never with string operators.
type PeriodKey string

// NewPeriodKey builds a key from a period number and year.
func NewPeriodKey(number, year int) PeriodKey {
	return PeriodKey(fmt.Sprintf("%02d-%d", number, year))
}

// ParsePeriodKey validates s as "MM-YYYY".
func ParsePeriodKey(s string) (PeriodKey, error) {
	number, year, err := splitPeriod(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}

	return NewPeriodKey(number, year), nil
}

// ParsePeriod accepts either "MM-YYYY" or the display form "MON-YYYY".
func ParsePeriod(s string) (PeriodKey, error) {
	s = strings.TrimSpace(s)

	head, tail, ok := strings.Cut(s, "-")
	if !ok || head == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriodKey, s)
	}

	if month, ok := monthByAbbrev[strings.ToUpper(head)]; ok {
		year, err := strconv.Atoi(tail)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidPeriodKey, s)
		}
		return NewPeriodKey(month, year), nil
	}

	return ParsePeriodKey(s)
}

// Parts decodes the key. Invalid keys return zeros.
func (k PeriodKey) Parts() (number, year int) {
	number, year, err := splitPeriod(string(k))
	if err != nil {
		return 0, 0
	}
	return number, year
}

// Number returns the period number of the key.
func (k PeriodKey) Number() int {
	n, _ := k.Parts()
	return n
}

// Year returns the year of the key.
func (k PeriodKey) Year() int {
	_, y := k.Parts()
	return y
}

// Valid reports whether the key decodes.
func (k PeriodKey) Valid() bool {
	_, _, err := splitPeriod(string(k))
	return err == nil
}

// Compare orders keys numerically by (year, period number).
func (k PeriodKey) Compare(other PeriodKey) int {
	n1, y1 := k.Parts()
	n2, y2 := other.Parts()
	return comparePeriodParts(n1, y1, n2, y2)
}

// Display renders the key as "JAN-2025".
func (k PeriodKey) Display() string {
	n, y := k.Parts()
	if n < 1 || n > 12 {
		return string(k)
	}
	return fmt.Sprintf("%s-%d", monthAbbrevs[n-1], y)
}

func (k PeriodKey) String() string {
	return string(k)
}

// PeriodRange is an inclusive range of period keys.
type PeriodRange struct {
	From PeriodKey
	To   PeriodKey
}

// Contains reports whether key lies inside the range.
func (r PeriodRange) Contains(key PeriodKey) bool {
	return key.Compare(r.From) >= 0 && key.Compare(r.To) <= 0
}

// PeriodRangeFromDates maps a date range onto period keys. The end moves back one
// month unless `to` is the last day of its month, so a partial month is excluded.
func PeriodRangeFromDates(from, to time.Time) (PeriodRange, error) {
	if to.Before(from) {
		return PeriodRange{}, ErrInvalidDateRange
	}

	end := to
	if !isLastDayOfMonth(to) {
		end = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location()).AddDate(0, -1, 0)
	}

	return PeriodRange{
		From: NewPeriodKey(int(from.Month()), from.Year()),
		To:   NewPeriodKey(int(end.Month()), end.Year()),
	}, nil
}

var monthAbbrevs = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

var monthByAbbrev = func() map[string]int {
	m := make(map[string]int, len(monthAbbrevs))
	for i, a := range monthAbbrevs {
		m[a] = i + 1
	}
	return m
}()

// splitPeriod cuts at the first "-" so a signed year survives ("01--5").
func splitPeriod(s string) (int, int, error) {
	numberPart, yearPart, ok := strings.Cut(s, "-")
	if !ok || len(numberPart) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodKey, s)
	}

	number, err := strconv.Atoi(numberPart)
	if err != nil || number < 1 || number > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodKey, s)
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodKey, s)
	}

	return number, year, nil
}

func comparePeriodParts(n1, y1, n2, y2 int) int {
	switch {
	case y1 < y2:
		return -1
	case y1 > y2:
		return 1
	case n1 < n2:
		return -1
	case n1 > n2:
		return 1
	default:
		return 0
	}
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

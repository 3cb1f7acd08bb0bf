// Package timeparse converts loosely formatted, human-entered scheduling
// phrases ("tomorrow 7pm", "in 2 days 8pm", "last friday 3:30pm") into
// absolute UTC instants.
//
// Parsing runs through an ordered chain of matcher stages: explicit offsets
// ("in N days", "N hours ago"), named relative days, weekday names, clock
// times, and finally a layered layout parser for anything that looks like an
// absolute timestamp. The first date-bearing stage that matches wins; later
// date stages are skipped. The resolver is a pure function of its inputs:
// "now" is passed in by the caller, never read from the system clock.
package timeparse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// pastGrace is how far behind "now" a future-only resolution may land before
// it is rejected. League folk routinely schedule a game "7pm" a few minutes
// after seven.
const pastGrace = time.Hour

var locationAliases = map[string]string{
	"est": "America/New_York",
	"edt": "America/New_York",
	"cst": "America/Chicago",
	"cdt": "America/Chicago",
	"mst": "America/Denver",
	"mdt": "America/Denver",
	"pst": "America/Los_Angeles",
	"pdt": "America/Los_Angeles",
	"utc": "UTC",
	"gmt": "UTC",
}

// Location maps a timezone abbreviation to its civil timezone. Unrecognized
// hints fall back to US Eastern rather than erroring; the hint is best-effort
// user input.
func Location(hint string) *time.Location {
	name, ok := locationAliases[strings.ToLower(strings.TrimSpace(hint))]
	if !ok {
		name = "America/New_York"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

var (
	agoRe         = regexp.MustCompile(`\b(\d+)\s*(days?|hours?|weeks?)\s+ago\b`)
	inRe          = regexp.MustCompile(`\bin\s+(\d+)\s*(days?|hours?)\b\s*(.*)$`)
	lastWeekdayRe = regexp.MustCompile(`\blast\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	weekdayRe     = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	// Clock-time token shapes, tried in order: H:MM with optional meridiem,
	// bare hour with required meridiem, H.MM decimal shorthand.
	colonClockRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})(?:\s*([ap])\.?m\b\.?)?`)
	suffixHourRe = regexp.MustCompile(`\b(\d{1,2})\s*([ap])\.?m\b\.?`)
	decimalRe    = regexp.MustCompile(`\b(\d{1,2})\.(\d{2})\b`)
	bareHourRe   = regexp.MustCompile(`^(\d{1,2})$`)
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// relativePhrase is one named relative-day matcher. Order matters: the first
// phrase found in the expression wins, so past-pointing phrases are listed
// before "today" to keep "last week" from matching as a bare weekday later.
type relativePhrase struct {
	phrase   string
	pastOnly bool
	shift    func(time.Time) time.Time
	re       *regexp.Regexp
}

var relativePhrases = []relativePhrase{
	{phrase: "yesterday", pastOnly: true, shift: func(t time.Time) time.Time { return t.AddDate(0, 0, -1) }},
	{phrase: "last week", pastOnly: true, shift: func(t time.Time) time.Time { return t.AddDate(0, 0, -7) }},
	{phrase: "last month", pastOnly: true, shift: func(t time.Time) time.Time { return t.AddDate(0, -1, 0) }},
	{phrase: "today", shift: func(t time.Time) time.Time { return t }},
	{phrase: "tomorrow", shift: func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
	{phrase: "next week", shift: func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }},
	{phrase: "next month", shift: func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }},
}

func init() {
	for i := range relativePhrases {
		relativePhrases[i].re = regexp.MustCompile(`\b` + relativePhrases[i].phrase + `\b`)
	}
}

// Resolve parses expression into an absolute UTC instant, interpreting naive
// wall-clock components in the timezone named by tzHint. now anchors all
// relative phrases. With allowPast false, results earlier than now minus a
// one-hour grace window are rejected; with allowPast true the past-pointing
// phrase stages ("N days ago", "yesterday", "last friday") are enabled and no
// temporal floor applies.
func Resolve(expression, tzHint string, now time.Time, allowPast bool) (time.Time, error) {
	loc := Location(tzHint)

	original := strings.ToLower(strings.TrimSpace(expression))
	if original == "" {
		return time.Time{}, &UnparseableExpressionError{Input: expression}
	}
	text := original

	base := now.In(loc)
	dateSet := false

	// Stage 1: "<N> <unit> ago". Only meaningful when past results are
	// acceptable.
	if allowPast {
		if m := agoRe.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			base = shiftUnits(base, m[2], -n)
			text = cut(text, m[0])
			dateSet = true
		}
	}

	// Stage 2: "in <N> <unit> [rest]". With no trailing text the offset
	// instant is the whole answer, time-of-now included.
	if !dateSet {
		if m := inRe.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			base = shiftUnits(base, m[2], n)
			rest := strings.TrimSpace(m[3])
			if rest == "" {
				return finalize(base, now, expression, allowPast)
			}
			text = rest
			dateSet = true
		}
	}

	// Stage 3: named relative days, first match wins.
	if !dateSet {
		for _, rp := range relativePhrases {
			if rp.pastOnly && !allowPast {
				continue
			}
			if m := rp.re.FindString(text); m != "" {
				base = rp.shift(base)
				text = cut(text, m)
				dateSet = true
				break
			}
		}
	}

	// Stage 4: "last <weekday>", the most recent occurrence strictly before
	// today. Same weekday today means a full week back, never zero.
	if !dateSet && allowPast {
		if m := lastWeekdayRe.FindStringSubmatch(text); m != nil {
			target := weekdayNames[m[1]]
			back := (int(base.Weekday()) - int(target) + 7) % 7
			if back == 0 {
				back = 7
			}
			base = base.AddDate(0, 0, -back)
			text = cut(text, m[0])
			dateSet = true
		}
	}

	// Stage 5: bare weekday, next occurrence on or after today. Landing on
	// today without a literal "today" in the expression means next week's
	// occurrence: "wednesday" said on a Wednesday is upcoming, not current.
	if !dateSet {
		if m := weekdayRe.FindStringSubmatch(text); m != nil {
			target := weekdayNames[m[1]]
			ahead := (int(target) - int(base.Weekday()) + 7) % 7
			if ahead == 0 && !strings.Contains(original, "today") {
				ahead = 7
			}
			base = base.AddDate(0, 0, ahead)
			text = cut(text, m[0])
			dateSet = true
		}
	}

	// A remainder that is already a complete timestamp ("2025-01-15 19:30",
	// an RFC3339 round trip) is taken verbatim before the clock heuristics
	// get a chance to pick digits out of it.
	if remainder := strings.TrimSpace(text); remainder != "" {
		if abs, err := parseLayouts(remainder, base, loc, true); err == nil {
			return finalize(abs, now, expression, allowPast)
		} else if !errors.Is(err, errNoLayout) {
			return time.Time{}, err
		}
	}

	// Stage 6: clock time.
	if tok, rest, ok := extractClock(text); ok {
		hour, minute, err := tok.resolve()
		if err != nil {
			return time.Time{}, err
		}
		resolved, err := setClock(base, hour, minute, loc)
		if err != nil {
			return time.Time{}, err
		}
		// Leftover text may still pin the date ("dec 25 7pm"); anything that
		// fails to parse as a date is trailing noise.
		if residue := stripFiller(rest); residue != "" {
			if d, err := parseLayouts(residue, base, loc, true); err == nil {
				resolved, err = setClockOn(d, hour, minute, loc)
				if err != nil {
					return time.Time{}, err
				}
			} else if !errors.Is(err, errNoLayout) {
				return time.Time{}, err
			}
		}
		return finalize(resolved, now, expression, allowPast)
	}

	// Stage 7: no clock token. Strip filler and hand whatever remains to the
	// layout parser with the working base date as the default.
	residue := stripFiller(text)
	if residue == "" {
		return finalize(base, now, expression, allowPast)
	}
	parsed, err := parseLayouts(residue, base, loc, false)
	if err != nil {
		if errors.Is(err, errNoLayout) {
			return time.Time{}, &UnparseableExpressionError{Input: expression}
		}
		return time.Time{}, err
	}
	return finalize(parsed, now, expression, allowPast)
}

// clockToken is a raw clock-time match before meridiem math and validation.
type clockToken struct {
	hour     int
	minute   int
	meridiem byte // 'a', 'p', or 0 when absent
}

// resolve applies meridiem arithmetic and the evening heuristic, then
// validates ranges. A "p" marker adds 12 unless the hour is already 12; an
// "a" marker maps 12 to 0. Without a marker, hours above 12 are taken as
// 24-hour values, and hours below 8 are assumed PM since league games are
// overwhelmingly evening events. Hours 8 through 12 stand as given.
func (t clockToken) resolve() (int, int, error) {
	hour := t.hour
	switch t.meridiem {
	case 'p':
		if hour != 12 {
			hour += 12
		}
	case 'a':
		if hour == 12 {
			hour = 0
		}
	default:
		if hour <= 12 && hour < 8 {
			hour += 12
		}
	}
	if hour < 0 || hour > 23 {
		return 0, 0, &InvalidTimeComponentError{Component: "hour", Value: hour}
	}
	if t.minute < 0 || t.minute > 59 {
		return 0, 0, &InvalidTimeComponentError{Component: "minute", Value: t.minute}
	}
	return hour, t.minute, nil
}

// extractClock tries the clock-time shapes in order and returns the first
// match plus the text with the match removed.
func extractClock(text string) (clockToken, string, bool) {
	if idx := colonClockRe.FindStringSubmatchIndex(text); idx != nil {
		tok := clockToken{
			hour:     atoiAt(text, idx, 1),
			minute:   atoiAt(text, idx, 2),
			meridiem: byteAt(text, idx, 3),
		}
		return tok, text[:idx[0]] + " " + text[idx[1]:], true
	}
	if idx := suffixHourRe.FindStringSubmatchIndex(text); idx != nil {
		tok := clockToken{
			hour:     atoiAt(text, idx, 1),
			meridiem: byteAt(text, idx, 2),
		}
		return tok, text[:idx[0]] + " " + text[idx[1]:], true
	}
	if idx := decimalRe.FindStringSubmatchIndex(text); idx != nil {
		tok := clockToken{
			hour:   atoiAt(text, idx, 1),
			minute: atoiAt(text, idx, 2),
		}
		return tok, text[:idx[0]] + " " + text[idx[1]:], true
	}
	// A remainder that is nothing but a one- or two-digit number is a bare
	// hour with no meridiem; the evening heuristic decides AM/PM.
	trimmed := strings.TrimSpace(text)
	if m := bareHourRe.FindStringSubmatch(trimmed); m != nil {
		n, _ := strconv.Atoi(m[1])
		return clockToken{hour: n}, "", true
	}
	return clockToken{}, text, false
}

func atoiAt(text string, idx []int, group int) int {
	lo, hi := idx[2*group], idx[2*group+1]
	if lo < 0 {
		return 0
	}
	n, _ := strconv.Atoi(text[lo:hi])
	return n
}

func byteAt(text string, idx []int, group int) byte {
	lo := idx[2*group]
	if lo < 0 {
		return 0
	}
	return text[lo]
}

// setClock replaces the time-of-day of base, keeping its date, and verifies
// the wall clock exists in loc.
func setClock(base time.Time, hour, minute int, loc *time.Location) (time.Time, error) {
	return setClockOn(base, hour, minute, loc)
}

func setClockOn(date time.Time, hour, minute int, loc *time.Location) (time.Time, error) {
	t := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
	// time.Date normalizes nonexistent wall clocks (DST spring-forward gap)
	// instead of failing; a shifted result means the requested time never
	// happened in this zone.
	if t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, &TimezoneResolutionError{
			Zone: loc.String(),
			Wall: t.Format("2006-01-02") + " " + twoDigits(hour) + ":" + twoDigits(minute),
		}
	}
	return t, nil
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func shiftUnits(t time.Time, unit string, n int) time.Time {
	switch {
	case strings.HasPrefix(unit, "day"):
		return t.AddDate(0, 0, n)
	case strings.HasPrefix(unit, "hour"):
		return t.Add(time.Duration(n) * time.Hour)
	case strings.HasPrefix(unit, "week"):
		return t.AddDate(0, 0, 7*n)
	}
	return t
}

// cut removes the first occurrence of match and tidies whitespace.
func cut(text, match string) string {
	return strings.Join(strings.Fields(strings.Replace(text, match, " ", 1)), " ")
}

var fillerWords = map[string]struct{}{
	"at": {}, "on": {}, "the": {}, "in": {},
	"am": {}, "pm": {}, "a.m.": {}, "p.m.": {},
}

// stripFiller drops connective words and stray meridiem tokens, leaving only
// text that could still carry date information.
func stripFiller(text string) string {
	var kept []string
	for _, f := range strings.Fields(text) {
		if _, ok := fillerWords[f]; ok {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// finalize converts a zoned civil time to UTC and applies the temporal floor
// in future-only mode.
func finalize(local time.Time, now time.Time, input string, allowPast bool) (time.Time, error) {
	utc := local.UTC()
	if !allowPast && utc.Before(now.UTC().Add(-pastGrace)) {
		return time.Time{}, &PastResultError{Input: input, Resolved: utc}
	}
	return utc, nil
}

package timeparse

import (
	"errors"
	"strings"
	"time"
)

// errNoLayout means the text matched none of the known layouts. It is
// internal: callers surface an UnparseableExpressionError naming the original
// input instead.
var errNoLayout = errors.New("timeparse: no layout matched")

// layoutSpec describes one accepted absolute format and which components it
// carries. Components the layout lacks are defaulted from the working base
// date.
type layoutSpec struct {
	layout   string
	absolute bool // carries its own offset; used verbatim
	hasDate  bool
	hasYear  bool
	hasTime  bool
}

var fallbackLayouts = []layoutSpec{
	{layout: time.RFC3339, absolute: true},
	{layout: "2006-01-02T15:04:05", hasDate: true, hasYear: true, hasTime: true},
	{layout: "2006-01-02 15:04:05", hasDate: true, hasYear: true, hasTime: true},
	{layout: "2006-01-02T15:04", hasDate: true, hasYear: true, hasTime: true},
	{layout: "2006-01-02 15:04", hasDate: true, hasYear: true, hasTime: true},
	{layout: "2006-01-02", hasDate: true, hasYear: true},
	{layout: "01/02/2006 15:04", hasDate: true, hasYear: true, hasTime: true},
	{layout: "1/2/2006 15:04", hasDate: true, hasYear: true, hasTime: true},
	{layout: "01/02/2006", hasDate: true, hasYear: true},
	{layout: "1/2/2006", hasDate: true, hasYear: true},
	{layout: "Jan 2 2006 15:04", hasDate: true, hasYear: true, hasTime: true},
	{layout: "January 2 2006 15:04", hasDate: true, hasYear: true, hasTime: true},
	{layout: "Jan 2 2006", hasDate: true, hasYear: true},
	{layout: "January 2 2006", hasDate: true, hasYear: true},
	{layout: "Jan 2 15:04", hasDate: true, hasTime: true},
	{layout: "January 2 15:04", hasDate: true, hasTime: true},
	{layout: "Jan 2", hasDate: true},
	{layout: "January 2", hasDate: true},
	{layout: "2 Jan", hasDate: true},
	{layout: "2 January", hasDate: true},
	{layout: "15:04", hasTime: true},
}

// parseLayouts parses text against the accepted layouts, filling components
// the matched layout lacks from base. With requireDate set, time-only layouts
// are skipped so a stray clock token never masquerades as a full timestamp.
func parseLayouts(text string, base time.Time, loc *time.Location, requireDate bool) (time.Time, error) {
	candidates := caseCandidates(text)
	for _, spec := range fallbackLayouts {
		if requireDate && !spec.hasDate {
			continue
		}
		for _, cand := range candidates {
			if spec.absolute {
				if parsed, err := time.Parse(spec.layout, cand); err == nil {
					return parsed, nil
				}
				continue
			}
			parsed, err := time.ParseInLocation(spec.layout, cand, loc)
			if err != nil {
				continue
			}
			return compose(parsed, spec, base, loc)
		}
	}
	return time.Time{}, errNoLayout
}

func compose(parsed time.Time, spec layoutSpec, base time.Time, loc *time.Location) (time.Time, error) {
	year := parsed.Year()
	if !spec.hasYear || year == 0 {
		year = base.Year()
	}
	month, day := parsed.Month(), parsed.Day()
	if !spec.hasDate {
		month, day = base.Month(), base.Day()
	}
	hour, minute, sec := base.Hour(), base.Minute(), base.Second()
	if spec.hasTime {
		hour, minute, sec = parsed.Hour(), parsed.Minute(), parsed.Second()
	}

	t := time.Date(year, month, day, hour, minute, sec, 0, loc)
	if spec.hasTime && (t.Hour() != hour || t.Minute() != minute) {
		return time.Time{}, &TimezoneResolutionError{
			Zone: loc.String(),
			Wall: t.Format("2006-01-02") + " " + twoDigits(hour) + ":" + twoDigits(minute),
		}
	}
	return t, nil
}

// caseCandidates works around time.Parse being case-sensitive: the pipeline
// lower-cases its input, but layouts expect "Dec 25" and RFC3339 expects
// upper-case T/Z markers.
func caseCandidates(text string) []string {
	title := titleWords(text)
	upper := strings.ToUpper(text)
	out := []string{text}
	if title != text {
		out = append(out, title)
	}
	if upper != text && upper != title {
		out = append(out, upper)
	}
	return out
}

func titleWords(text string) string {
	fields := strings.Fields(text)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

package literal

import (
	"regexp"
	"strconv"
	"time"
)

// Timestamp grammar: a date-only YYYY-M-D form and a full form with
// time, optional fraction, and optional Z or +/-HH[:MM] offset. Text
// outside the grammar is not an error here; callers decide what a
// non-match means.
var (
	dateRE = regexp.MustCompile(
		`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	timestampRE = regexp.MustCompile(
		`^(\d{4})-(\d{1,2})-(\d{1,2})` +
			`(?:[Tt ](\d{1,2}):(\d{1,2}):(\d{1,2})` +
			`(?:\.(\d*))?` +
			`(?: ?(?:([Zz])|([-+])(\d{1,2})(?::(\d{1,2}))?))?)?$`)
)

// ParseTimestamp parses a timestamp with the faithful offset policy:
// times carrying an explicit non-Z offset are normalized into the
// local zone by adding the difference between the local offset and
// the specified one. Times with no offset are local, Z is UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	return parseTimestamp(s, false)
}

// ParseTimestampUTC parses a timestamp normalizing to UTC: explicit
// offsets are honored and the instant converted to UTC, and times
// with no offset are taken as UTC.
func ParseTimestampUTC(s string) (time.Time, bool) {
	return parseTimestamp(s, true)
}

// ParseDate parses the date-only grammar to local midnight.
func ParseDate(s string) (time.Time, bool) {
	return parseDate(s, time.Local)
}

// ParseDateUTC parses the date-only grammar to UTC midnight.
func ParseDateUTC(s string) (time.Time, bool) {
	return parseDate(s, time.UTC)
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	m := dateRE.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	y, mo, d := atoi(m[1]), atoi(m[2]), atoi(m[3])
	return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, loc), true
}

func parseTimestamp(s string, utcNorm bool) (time.Time, bool) {
	m := timestampRE.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	var (
		y, mo, d = atoi(m[1]), atoi(m[2]), atoi(m[3])
		hh, mm   int
		ss       int
		nsec     int
	)
	if m[4] != "" {
		hh, mm, ss = atoi(m[4]), atoi(m[5]), atoi(m[6])
		nsec = fractionNanos(m[7])
	}
	switch {
	case m[8] != "": // Z
		return time.Date(y, time.Month(mo), d, hh, mm, ss, nsec, time.UTC), true
	case m[9] != "": // explicit offset
		spec := atoi(m[10]) * 3600
		if m[11] != "" {
			spec += atoi(m[11]) * 60
		}
		if m[9] == "-" {
			spec = -spec
		}
		if utcNorm {
			t := time.Date(y, time.Month(mo), d, hh, mm, ss, nsec,
				time.FixedZone("", spec))
			return t.UTC(), true
		}
		t := time.Date(y, time.Month(mo), d, hh, mm, ss, nsec, time.Local)
		_, local := t.Zone()
		return t.Add(time.Duration(local-spec) * time.Second), true
	default:
		loc := time.Local
		if utcNorm {
			loc = time.UTC
		}
		return time.Date(y, time.Month(mo), d, hh, mm, ss, nsec, loc), true
	}
}

// fractionNanos right-pads the fraction digit string to microsecond
// precision and converts to nanoseconds.
func fractionNanos(frac string) int {
	if frac == "" {
		return 0
	}
	for len(frac) < 6 {
		frac += "0"
	}
	micros := atoi(frac[:6])
	return micros * 1000
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

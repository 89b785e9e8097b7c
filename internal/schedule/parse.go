package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	rangeRe  = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)\s*-\s*(\d{1,2}):(\d{2})\s*(AM|PM)`)
	singleRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
)

// dateLayouts are tried in order by ParseDateIn.
var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Monday, January 2, 2006",
	"Mon, Jan 2, 2006",
	"2 January 2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ParseTimeRange parses a clock range such as "6:00 PM - 7:00 PM" and places
// both ends on the calendar day of date, in date's location. A single time
// such as "10:00 AM" yields a one hour range. The range is taken as written,
// so an end earlier than the start is not moved to the next day.
func ParseTimeRange(s string, date time.Time) (start, end time.Time, ok bool) {
	if m := rangeRe.FindStringSubmatch(s); m != nil {
		start = atClock(date, m[1], m[2], m[3])
		end = atClock(date, m[4], m[5], m[6])
		return start, end, true
	}

	if m := singleRe.FindStringSubmatch(s); m != nil {
		start = atClock(date, m[1], m[2], m[3])
		return start, start.Add(time.Hour), true
	}

	return time.Time{}, time.Time{}, false
}

// atClock returns date's calendar day at the given 12-hour clock time.
func atClock(date time.Time, hour, minute, meridiem string) time.Time {
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	pm := strings.EqualFold(meridiem, "PM")

	switch {
	case h == 12 && !pm:
		h = 0
	case h != 12 && pm:
		h += 12
	}

	y, mo, d := date.Date()
	return time.Date(y, mo, d, h, m, 0, 0, date.Location())
}

// ParseDate parses a calendar date such as "April 5, 2026" in the local zone.
func ParseDate(s string) (time.Time, bool) {
	return ParseDateIn(s, time.Local)
}

// ParseDateIn parses a calendar date at midnight in loc.
func ParseDateIn(s string, loc *time.Location) (time.Time, bool) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Package calendar generates ICS event payloads for follow-ups scheduled
// from a processed item.
package calendar

import (
	"strings"
	"time"
)

// Event describes a single calendar entry.
type Event struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	DurationMin int
}

const icsTimeLayout = "20060102T150405"

// ICS renders the event as a VCALENDAR string. Times are emitted as
// floating local time, which most calendars interpret relative to the
// viewer. A zero Start defaults to tomorrow 09:00; a zero duration to one
// hour.
func ICS(ev Event) string {
	start := ev.Start
	if start.IsZero() {
		start = time.Now().AddDate(0, 0, 1)
		start = time.Date(start.Year(), start.Month(), start.Day(), 9, 0, 0, 0, start.Location())
	}
	dur := ev.DurationMin
	if dur <= 0 {
		dur = 60
	}
	end := start.Add(time.Duration(dur) * time.Minute)
	now := time.Now()

	uid := now.Format(icsTimeLayout) + "-" + strings.ReplaceAll(ev.Summary, " ", "") + "@backbone.local"
	desc := strings.ReplaceAll(ev.Description, "\n", `\n`)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Backbone//Calendar//EN",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + now.Format(icsTimeLayout),
		"DTSTART:" + start.Format(icsTimeLayout),
		"DTEND:" + end.Format(icsTimeLayout),
		"SUMMARY:" + ev.Summary,
		"DESCRIPTION:" + desc,
		"LOCATION:" + ev.Location,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\n")
}

package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestICS(t *testing.T) {
	start := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	got := ICS(Event{
		Summary:     "Réunion copropriété",
		Description: "Ordre du jour :\npoint travaux",
		Location:    "Salle B",
		Start:       start,
		DurationMin: 90,
	})

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"DTSTART:20250315T143000",
		"DTEND:20250315T160000",
		"SUMMARY:Réunion copropriété",
		`DESCRIPTION:Ordre du jour :\npoint travaux`,
		"LOCATION:Salle B",
		"END:VCALENDAR",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ICS output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\npoint travaux\n") {
		t.Error("raw newline leaked into DESCRIPTION")
	}
}

func TestICSDefaults(t *testing.T) {
	got := ICS(Event{Summary: "Relance"})
	// zero start defaults to tomorrow 09:00 local
	tomorrow := time.Now().AddDate(0, 0, 1)
	wantStart := "DTSTART:" + time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 9, 0, 0, 0, tomorrow.Location()).Format("20060102T150405")
	if !strings.Contains(got, wantStart) {
		t.Fatalf("default start missing %q:\n%s", wantStart, got)
	}
	// zero duration defaults to one hour
	wantEnd := strings.Replace(wantStart, "T090000", "T100000", 1)
	if !strings.Contains(got, strings.TrimPrefix(wantEnd, "DTSTART:")) {
		t.Fatalf("default end missing:\n%s", got)
	}
}

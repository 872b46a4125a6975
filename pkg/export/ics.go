package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/666bes666/duty-schedule-gen/pkg/schedule"
)

// WriteICS renders one VEVENT per duty shift (morning, evening, or
// night depending on which shifts the site serves) worked by anyone on
// site, so each site's on-call team can subscribe to a calendar feed
// scoped to the shifts that matter to them.
func WriteICS(w io.Writer, sched *schedule.Schedule, site schedule.Site, tz *time.Location) error {
	if tz == nil {
		tz = time.UTC
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//duty-schedule-gen//Roster//EN\r\n")
	b.WriteString(fmt.Sprintf("X-WR-CALNAME:%s Duty Roster %04d-%02d\r\n", site, sched.Config.Year, sched.Config.Month))
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")

	for _, shift := range []schedule.ShiftType{schedule.Morning, schedule.Evening, schedule.Night} {
		if !site.Serves(shift) {
			continue
		}
		startHour, endHour, ok := schedule.HQHours(shift)
		if !ok {
			continue
		}
		for _, day := range sched.Days {
			names := namesForShift(day, shift)
			for _, name := range names {
				start := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), startHour, 0, 0, 0, tz)
				end := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), endHour, 0, 0, 0, tz)
				if endHour <= startHour {
					end = end.AddDate(0, 0, 1)
				}
				uid := fmt.Sprintf("%s-%s-%s@duty-schedule-gen", strings.ToLower(string(shift)), day.Date.Format("20060102"), sanitizeUID(name))
				b.WriteString("BEGIN:VEVENT\r\n")
				b.WriteString(fmt.Sprintf("UID:%s\r\n", uid))
				b.WriteString(fmt.Sprintf("DTSTART:%s\r\n", start.UTC().Format("20060102T150405Z")))
				b.WriteString(fmt.Sprintf("DTEND:%s\r\n", end.UTC().Format("20060102T150405Z")))
				b.WriteString(fmt.Sprintf("SUMMARY:%s duty: %s\r\n", shift, name))
				holidayNote := ""
				if day.IsHoliday {
					holidayNote = " (holiday)"
				}
				b.WriteString(fmt.Sprintf("DESCRIPTION:Site: %s\\nShift: %s%s\r\n", site, shift, holidayNote))
				b.WriteString("END:VEVENT\r\n")
			}
		}
	}

	b.WriteString("END:VCALENDAR\r\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("export: write calendar: %w", err)
	}
	return nil
}

func namesForShift(day schedule.DaySchedule, shift schedule.ShiftType) []string {
	switch shift {
	case schedule.Morning:
		return day.Morning
	case schedule.Evening:
		return day.Evening
	case schedule.Night:
		return day.Night
	default:
		return nil
	}
}

func sanitizeUID(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
}

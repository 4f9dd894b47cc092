// Package schedule reads the free-text availability strings attached to resources,
// such as "Lunes a Viernes 07:00-19:00" or "Sábado 08:00-12:00".
package schedule

import (
	"regexp"
	"strings"
)

// Weekdays in display order, Lunes = 0 through Domingo = 6.
var Weekdays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

var (
	windowRe   = regexp.MustCompile(`(\d{2}:\d{2})-(\d{2}:\d{2})`)
	dayRangeRe = regexp.MustCompile(`^(\S+) a (\S+) (\d{2}:\d{2}-\d{2}:\d{2})`)
	clockRe    = regexp.MustCompile(`^\d{2}:\d{2}`)
)

// DailyWindow is one day of an expanded schedule.
type DailyWindow struct {
	Day    string `json:"dia"`
	Window string `json:"horario"`
}

func (w DailyWindow) String() string {
	return w.Day + " " + w.Window
}

// IsWithinWindow reports whether requested ("HH:MM", optionally followed by ":SS") falls inside
// the first HH:MM-HH:MM range found in schedule, bounds included.
// Zero padded 24h clock strings order the same lexically and numerically.
// The day part of the schedule is ignored.
func IsWithinWindow(schedule, requested string) bool {
	m := windowRe.FindStringSubmatch(schedule)
	if m == nil {
		return false
	}
	if !clockRe.MatchString(requested) {
		return false
	}
	at := requested[:5]
	return m[1] <= at && at <= m[2]
}

// ExpandToDailyWindows expands "<Day> a <Day> HH:MM-HH:MM" into one entry per day, inclusive.
// A single "<Day> HH:MM-HH:MM" yields itself. Anything else yields an empty slice.
func ExpandToDailyWindows(schedule string) []DailyWindow {
	if m := dayRangeRe.FindStringSubmatch(schedule); m != nil {
		from, to := dayIndex(m[1]), dayIndex(m[2])
		if from < 0 || to < 0 || from > to {
			return []DailyWindow{}
		}
		out := make([]DailyWindow, 0, to-from+1)
		for i := from; i <= to; i++ {
			out = append(out, DailyWindow{Day: Weekdays[i], Window: m[3]})
		}
		return out
	}

	parts := strings.Fields(schedule)
	if len(parts) == 2 && dayIndex(parts[0]) >= 0 {
		return []DailyWindow{{Day: parts[0], Window: parts[1]}}
	}
	return []DailyWindow{}
}

func dayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

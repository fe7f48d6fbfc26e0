package booking

import (
	"fmt"
	"math"
	"strings"
	"time"

	"blueriver/models"
)

// DateLayout is the calendar date format used for check-in/out and service dates.
const DateLayout = "2006-01-02"

// timeLabelLayout parses labels such as "08:00 AM" once spaces are removed.
const timeLabelLayout = "3:04PM"

// ParseDate parses a YYYY-MM-DD date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", models.ErrValidation, s)
	}
	return t, nil
}

// DurationInDays returns the number of whole calendar days between start and end.
// Time of day is ignored and the result is never negative.
func DurationInDays(start, end time.Time) int {
	d := calendarDay(end).Sub(calendarDay(start))
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// ParseTimeLabel converts a 12-hour label ("HH:MM AM|PM") into minutes since midnight.
func ParseTimeLabel(label string) (int, bool) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(label), ""))
	t, err := time.Parse(timeLabelLayout, normalized)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// IsPastSlot reports whether the slot on date has already started at now. Only slots
// on now's calendar date can be past; unparseable labels are never past.
func IsPastSlot(date time.Time, timeLabel string, now time.Time) bool {
	if !sameDay(date, now) {
		return false
	}
	minutes, ok := ParseTimeLabel(timeLabel)
	if !ok {
		return false
	}
	return minutes <= now.Hour()*60+now.Minute()
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

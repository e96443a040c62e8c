package aggregation

import "time"

// WeekBounds returns the Monday 00:00:00.000 and Sunday 23:59:59.999 (UTC)
// of the week containing t. Sunday closes its week.
func WeekBounds(t time.Time) (start, end time.Time) {
	t = t.UTC()

	// Monday=0 ... Sunday=6
	offset := (int(t.Weekday()) + 6) % 7

	start = time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

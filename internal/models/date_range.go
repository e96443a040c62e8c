package models

import "time"

// DateRange is an inclusive time window; a nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t lies within the range, bounds included.
func (r *DateRange) Contains(t time.Time) bool {
	if r == nil {
		return true
	}
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// IsEmpty reports whether neither bound is set.
func (r *DateRange) IsEmpty() bool {
	return r == nil || (r.Start == nil && r.End == nil)
}

package domain

// TimeRange is an optional same-day window attached to a task.
// Start and End are "HH:MM" clock times; either may be empty.
type TimeRange struct {
	Start string
	End   string
}

// NewTimeRange returns a TimeRange for the given clock times.
func NewTimeRange(start, end string) *TimeRange {
	return &TimeRange{Start: start, End: end}
}

// HasStart returns true if a start time is set.
func (tr *TimeRange) HasStart() bool {
	return tr != nil && tr.Start != ""
}

// HasEnd returns true if an end time is set.
func (tr *TimeRange) HasEnd() bool {
	return tr != nil && tr.End != ""
}

// IsEmpty returns true if neither bound is set. A nil range is empty.
func (tr *TimeRange) IsEmpty() bool {
	return !tr.HasStart() && !tr.HasEnd()
}

// Clone returns a copy of the range, or nil for a nil range.
func (tr *TimeRange) Clone() *TimeRange {
	if tr == nil {
		return nil
	}
	c := *tr
	return &c
}

// Package timerange tracks sets of calendar days. Timestamps are
// truncated to their UTC day before any operation, so a DaySet never
// distinguishes two instants within the same day.
package timerange

import (
	"time"

	"github.com/akmistry/intervalset"
)

const secondsPerDay = 86400

// epochDays converts t to whole days since the Unix epoch, UTC.
func epochDays(t time.Time) int64 {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Unix() / secondsPerDay
}

func dayStart(days int64) time.Time {
	return time.Unix(days*secondsPerDay, 0).UTC()
}

// DayRange is a closed run of calendar days. From and To are
// midnights, UTC.
type DayRange struct {
	From, To time.Time
}

// DaySet tracks calendar days as coalesced day runs.
// The zero value is an empty set. Not safe for concurrent use.
type DaySet struct {
	set intervalset.IntervalSet[int64]
}

// Insert marks every day from from through to, inclusive. Returns
// intervalset.ErrInvalidRange if from's day is after to's.
func (s *DaySet) Insert(from, to time.Time) error {
	seg, err := intervalset.NewSegment(epochDays(from), epochDays(to))
	if err != nil {
		return err
	}
	s.set.Insert(seg)
	return nil
}

// Remove unmarks every day from from through to, inclusive. Days are
// discrete, so the removal rounds its cut points one day outward on
// each side.
func (s *DaySet) Remove(from, to time.Time) error {
	seg, err := intervalset.NewSegment(epochDays(from), epochDays(to))
	if err != nil {
		return err
	}
	s.set.Remove(seg, dayAdjuster{})
	return nil
}

type dayAdjuster struct{}

func (dayAdjuster) AdjustUp(d int64) (int64, error) {
	return d + 1, nil
}

func (dayAdjuster) AdjustDown(d int64) (int64, error) {
	return d - 1, nil
}

// Contains reports whether the day containing t is marked.
func (s *DaySet) Contains(t time.Time) bool {
	return s.set.Contains(epochDays(t))
}

// Len returns the number of stored day runs.
func (s *DaySet) Len() int {
	return s.set.Len()
}

// Clear unmarks every day.
func (s *DaySet) Clear() {
	s.set.Clear()
}

// Ranges returns the marked day runs in ascending order.
func (s *DaySet) Ranges() []DayRange {
	out := make([]DayRange, 0, s.set.Len())
	s.set.Ascend(func(seg intervalset.Segment[int64]) bool {
		out = append(out, DayRange{From: dayStart(seg.Start()), To: dayStart(seg.End())})
		return true
	})
	return out
}

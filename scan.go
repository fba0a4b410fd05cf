package intervalset

import (
	"cmp"
)

// overlapSpan pairs a stored segment with its classification against
// an edit range.
type overlapSpan[K cmp.Ordered] struct {
	seg  Segment[K]
	kind overlapKind
}

// scan returns the stored segments intersecting [a, b] together with
// their classifications, in ascending start order. The result is
// freshly allocated; scan never mutates the set.
func (s *IntervalSet[K]) scan(a, b K) []overlapSpan[K] {
	if s.segs.Len() == 0 || b < s.coveredStart || a > s.coveredEnd {
		return nil
	}

	// A segment covering a, if any, starts at or before a. Seek to the
	// greatest start <= a and walk forward from there.
	from := a
	s.segs.Descend(a, func(start K, _ Segment[K]) bool {
		from = start
		return false
	})

	var spans []overlapSpan[K]
	s.segs.Ascend(from, func(start K, seg Segment[K]) bool {
		if seg.end < a {
			return true
		}
		if start > b {
			return false
		}
		if kind := classify(a, b, seg); kind != overlapNone {
			spans = append(spans, overlapSpan[K]{seg: seg, kind: kind})
		}
		return true
	})
	return spans
}

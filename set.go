package intervalset

import (
	"cmp"
	"log"

	"github.com/tidwall/btree"
)

// IntervalSet maintains a sorted collection of non-overlapping closed
// segments, keyed by segment start. Insert unions a segment into the
// set, coalescing everything it touches; Remove subtracts one,
// trimming, splitting or deleting stored segments.
//
// The zero value is an empty set ready to use. An IntervalSet is not
// safe for concurrent use; hand concurrent readers a Clone instead.
type IntervalSet[K cmp.Ordered] struct {
	segs btree.Map[K, Segment[K]]

	// Aggregate bounds over the stored segments. Both are the zero K
	// when the set is empty.
	coveredStart K
	coveredEnd   K

	auditing bool
}

func New[K cmp.Ordered]() *IntervalSet[K] {
	return &IntervalSet[K]{}
}

// SetAuditing toggles the audit trail returned by Insert and Remove.
// While disabled (the default), both return nil and take no segment
// snapshots.
func (s *IntervalSet[K]) SetAuditing(on bool) {
	s.auditing = on
}

func (s *IntervalSet[K]) trail() *auditTrail[K] {
	if !s.auditing {
		return nil
	}
	return &auditTrail[K]{}
}

// Insert unions seg into the set. Every stored segment sharing at
// least one point with seg is coalesced with it into a single merged
// segment; if seg lies strictly inside a stored segment, the set is
// unchanged. Returns the audit trail of the edit, nil when auditing
// is off.
func (s *IntervalSet[K]) Insert(seg Segment[K]) []AuditEntry[K] {
	trail := s.trail()
	newStart := seg.start
	newEnd := seg.end
	for _, span := range s.scan(seg.start, seg.end) {
		switch span.kind {
		case overlapInside:
			// Already subsumed by a stored segment.
			return trail.list()
		case overlapWhole:
			s.delete(span.seg)
			trail.deleted(span.seg)
		case overlapRight, overlapRightEdge:
			newStart = span.seg.start
			s.delete(span.seg)
			trail.deleted(span.seg)
		case overlapLeft, overlapLeftEdge:
			newEnd = span.seg.end
			s.delete(span.seg)
			trail.deleted(span.seg)
		default:
			log.Panicf("intervalset: unexpected overlap %v for %v", span.kind, span.seg)
		}
	}
	merged := Segment[K]{start: newStart, end: newEnd}
	s.insert(merged)
	trail.created(merged)
	s.recomputeBounds()
	return trail.list()
}

// Remove subtracts seg from the set. Stored segments covered by seg
// are deleted, partially overlapped ones are trimmed, and a segment
// strictly enclosing seg is split in two. adj (nil for identity)
// decides how shared endpoints round on discrete domains. Returns the
// audit trail of the edit, nil when auditing is off.
func (s *IntervalSet[K]) Remove(seg Segment[K], adj EndpointAdjuster[K]) []AuditEntry[K] {
	spans := s.scan(seg.start, seg.end)
	if len(spans) == 0 {
		return s.trail().list()
	}
	trail := s.trail()

	up := seg.end
	down := seg.start
	if adj != nil {
		if v, err := adj.AdjustUp(seg.end); err == nil {
			up = v
		}
		if v, err := adj.AdjustDown(seg.start); err == nil {
			down = v
		}
	}

	var split Segment[K]
	haveSplit := false
	for _, span := range spans {
		old := span.seg
		switch span.kind {
		case overlapWhole:
			s.delete(old)
			trail.deleted(old)
		case overlapRight, overlapRightEdge:
			// Keep the part left of the removal. The gate skips
			// segments whose start sits past a down-adjusted cut;
			// those stay whole rather than invert.
			if old.start <= down {
				trimmed := Segment[K]{start: old.start, end: down}
				s.replace(old, trimmed)
				trail.mutated(old, trimmed)
			}
		case overlapLeft, overlapLeftEdge:
			// Keep the part right of the removal, under its new start.
			if up <= old.end {
				kept := Segment[K]{start: up, end: old.end}
				s.delete(old)
				s.insert(kept)
				trail.mutated(old, kept)
			}
		case overlapInside:
			// The enclosing segment loses its middle. The right half
			// is keyed at up, strictly past the trimmed left half, so
			// it is applied after the walk.
			if old.end > seg.end && up <= old.end {
				split = Segment[K]{start: up, end: old.end}
				haveSplit = true
				trail.created(split)
			}
			if old.start <= down {
				trimmed := Segment[K]{start: old.start, end: down}
				s.replace(old, trimmed)
				trail.mutated(old, trimmed)
			}
		default:
			log.Panicf("intervalset: unexpected overlap %v for %v", span.kind, old)
		}
	}
	if haveSplit {
		s.insert(split)
	}
	s.recomputeBounds()
	return trail.list()
}

// insert stores a segment under a key that must be vacant.
func (s *IntervalSet[K]) insert(seg Segment[K]) {
	if prev, ok := s.segs.Set(seg.start, seg); ok {
		log.Panicf("intervalset: segment %v displaced by %v", prev, seg)
	}
}

// replace swaps the stored segment old for seg, which must share its
// start key.
func (s *IntervalSet[K]) replace(old, seg Segment[K]) {
	prev, ok := s.segs.Set(seg.start, seg)
	if !ok || prev != old {
		log.Panicf("intervalset: segment %v not stored at %v", old, seg.start)
	}
}

func (s *IntervalSet[K]) delete(seg Segment[K]) {
	if _, ok := s.segs.Delete(seg.start); !ok {
		log.Panicf("intervalset: segment %v not stored", seg)
	}
}

func (s *IntervalSet[K]) recomputeBounds() {
	var zero K
	if s.segs.Len() == 0 {
		s.coveredStart = zero
		s.coveredEnd = zero
		return
	}
	start, _, _ := s.segs.Min()
	_, last, _ := s.segs.Max()
	s.coveredStart = start
	// Stored segments never overlap, so the greatest start also has
	// the greatest end.
	s.coveredEnd = last.end
}

// Clear drops every segment and resets the aggregate bounds.
func (s *IntervalSet[K]) Clear() {
	s.segs = btree.Map[K, Segment[K]]{}
	var zero K
	s.coveredStart = zero
	s.coveredEnd = zero
}

// Len returns the number of stored segments.
func (s *IntervalSet[K]) Len() int {
	return s.segs.Len()
}

// Segments returns a snapshot of the stored segments in ascending
// start order.
func (s *IntervalSet[K]) Segments() []Segment[K] {
	segs := make([]Segment[K], 0, s.segs.Len())
	s.segs.Scan(func(_ K, seg Segment[K]) bool {
		segs = append(segs, seg)
		return true
	})
	return segs
}

// Ascend streams the stored segments in ascending start order until
// fn returns false.
func (s *IntervalSet[K]) Ascend(fn func(Segment[K]) bool) {
	s.segs.Scan(func(_ K, seg Segment[K]) bool {
		return fn(seg)
	})
}

// Contains reports whether p lies inside some stored segment.
func (s *IntervalSet[K]) Contains(p K) bool {
	if s.segs.Len() == 0 || p < s.coveredStart || p > s.coveredEnd {
		return false
	}
	found := false
	s.segs.Descend(p, func(_ K, seg Segment[K]) bool {
		found = seg.Contains(p)
		return false
	})
	return found
}

// ContainsFunc reports whether any stored segment satisfies pred. The
// order of evaluation is unspecified; pred must be pure.
func (s *IntervalSet[K]) ContainsFunc(pred func(Segment[K]) bool) bool {
	found := false
	s.segs.Scan(func(_ K, seg Segment[K]) bool {
		found = pred(seg)
		return !found
	})
	return found
}

// CoveredStart returns the smallest stored start, or the zero K when
// the set is empty.
func (s *IntervalSet[K]) CoveredStart() K {
	return s.coveredStart
}

// CoveredEnd returns the largest stored end, or the zero K when the
// set is empty.
func (s *IntervalSet[K]) CoveredEnd() K {
	return s.coveredEnd
}

// Clone returns an independent copy of the set. Auditing on the clone
// starts disabled regardless of the receiver's setting.
func (s *IntervalSet[K]) Clone() *IntervalSet[K] {
	return &IntervalSet[K]{
		segs:         *s.segs.Copy(),
		coveredStart: s.coveredStart,
		coveredEnd:   s.coveredEnd,
	}
}

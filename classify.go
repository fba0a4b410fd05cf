package intervalset

import (
	"cmp"
	"log"
)

// overlapKind describes how an edit range (a, b) intersects a stored
// segment. Exactly one kind applies to any pair of well-formed ranges.
type overlapKind int

const (
	// overlapNone: disjoint.
	overlapNone overlapKind = iota
	// overlapWhole: the edit covers the whole segment.
	overlapWhole
	// overlapRightEdge: the edit begins exactly at the segment's end.
	overlapRightEdge
	// overlapRight: the edit begins inside the segment and reaches its
	// end or beyond.
	overlapRight
	// overlapLeftEdge: the edit ends exactly at the segment's start.
	overlapLeftEdge
	// overlapLeft: the edit begins at or before the segment's start and
	// ends inside it.
	overlapLeft
	// overlapInside: the edit lies strictly inside the segment.
	overlapInside
)

func (k overlapKind) String() string {
	switch k {
	case overlapNone:
		return "none"
	case overlapWhole:
		return "whole"
	case overlapRightEdge:
		return "right-edge"
	case overlapRight:
		return "right"
	case overlapLeftEdge:
		return "left-edge"
	case overlapLeft:
		return "left"
	case overlapInside:
		return "inside"
	}
	return "invalid"
}

// classify tags the intersection of the edit range [a, b] with seg.
// Requires a <= b.
func classify[K cmp.Ordered](a, b K, seg Segment[K]) overlapKind {
	if b < seg.start || a > seg.end {
		return overlapNone
	}
	switch {
	case a <= seg.start && b >= seg.end:
		return overlapWhole
	case b == seg.start:
		return overlapLeftEdge
	case a == seg.end:
		return overlapRightEdge
	case a <= seg.start:
		// seg.start < b < seg.end
		return overlapLeft
	case b >= seg.end:
		// seg.start < a < seg.end
		return overlapRight
	case a > seg.start && b < seg.end:
		return overlapInside
	}
	log.Panicf("intervalset: unclassifiable overlap (%v, %v) vs %v", a, b, seg)
	return overlapNone
}

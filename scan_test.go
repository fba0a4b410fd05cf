package intervalset

import (
	"testing"
)

func scanKinds(s *IntervalSet[int], a, b int) []overlapKind {
	var kinds []overlapKind
	for _, span := range s.scan(a, b) {
		kinds = append(kinds, span.kind)
	}
	return kinds
}

func TestScan(t *testing.T) {
	var s IntervalSet[int]
	s.Insert(mustSeg(0, 2))
	s.Insert(mustSeg(4, 6))
	s.Insert(mustSeg(8, 10))
	s.Insert(mustSeg(12, 14))

	spans := s.scan(5, 9)
	if len(spans) != 2 {
		t.Fatalf("scan(5, 9) returned %d spans", len(spans))
	}
	if spans[0].seg != mustSeg(4, 6) || spans[0].kind != overlapRight {
		t.Errorf("Unexpected span %v/%v", spans[0].seg, spans[0].kind)
	}
	if spans[1].seg != mustSeg(8, 10) || spans[1].kind != overlapLeft {
		t.Errorf("Unexpected span %v/%v", spans[1].seg, spans[1].kind)
	}
}

func TestScanOrdered(t *testing.T) {
	var s IntervalSet[int]
	s.Insert(mustSeg(8, 10))
	s.Insert(mustSeg(0, 2))
	s.Insert(mustSeg(4, 6))

	spans := s.scan(0, 20)
	want := []Segment[int]{mustSeg(0, 2), mustSeg(4, 6), mustSeg(8, 10)}
	if len(spans) != len(want) {
		t.Fatalf("scan(0, 20) returned %d spans", len(spans))
	}
	for i, span := range spans {
		if span.seg != want[i] {
			t.Errorf("Span %d is %v, expected %v", i, span.seg, want[i])
		}
		if span.kind != overlapWhole {
			t.Errorf("Span %d kind %v, expected %v", i, span.kind, overlapWhole)
		}
	}
}

func TestScanFastReject(t *testing.T) {
	var s IntervalSet[int]
	if spans := s.scan(0, 10); spans != nil {
		t.Errorf("scan on empty set returned %v", spans)
	}

	s.Insert(mustSeg(10, 20))
	if spans := s.scan(0, 5); spans != nil {
		t.Errorf("scan left of coverage returned %v", spans)
	}
	if spans := s.scan(25, 30); spans != nil {
		t.Errorf("scan right of coverage returned %v", spans)
	}
}

// The segment covering the scan start must be found even though its
// key precedes the scanned range.
func TestScanFindsFloorSegment(t *testing.T) {
	var s IntervalSet[int]
	s.Insert(mustSeg(0, 100))
	spans := s.scan(40, 60)
	if len(spans) != 1 || spans[0].kind != overlapInside {
		t.Fatalf("Unexpected spans %v", spans)
	}
}

func TestScanSkipsAndStops(t *testing.T) {
	var s IntervalSet[int]
	s.Insert(mustSeg(0, 2))
	s.Insert(mustSeg(4, 6))
	s.Insert(mustSeg(8, 10))

	// 3 is in the gap: the floor segment (0, 2) ends before the range
	// and must be skipped, and (8, 10) starts past it.
	kinds := scanKinds(&s, 3, 7)
	if len(kinds) != 1 || kinds[0] != overlapWhole {
		t.Errorf("Unexpected kinds %v", kinds)
	}
}

func TestScanDoesNotMutate(t *testing.T) {
	var s IntervalSet[int]
	s.Insert(mustSeg(0, 2))
	s.Insert(mustSeg(4, 6))
	before := pairs(s.Segments())
	s.scan(0, 10)
	s.scan(3, 3)
	checkSegments(t, &s, before)
}

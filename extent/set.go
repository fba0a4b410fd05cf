package extent

import (
	"log"

	"github.com/akmistry/go-util/radix-tree"
)

var _ = (Tracker)((*Set)(nil))

// Set tracks present blocks as coalesced extents in an ordered tree.
// Stored extents never overlap or abut. The zero value is an empty
// set.
type Set struct {
	tree  radix.Tree
	count int
}

func (s *Set) Begin() (begin uint64, ok bool) {
	s.tree.Ascend(func(i radix.Item) bool {
		begin = i.(*Extent).Offset
		ok = true
		return false
	})
	return
}

func (s *Set) End() (end uint64) {
	s.tree.Descend(func(i radix.Item) bool {
		end = i.(*Extent).End()
		return false
	})
	return
}

// touching returns the stored extents overlapping or abutting
// [offset, end), in descending offset order.
func (s *Set) touching(offset, end uint64) []*Extent {
	var items []*Extent
	s.tree.DescendLessOrEqualI(end, func(i radix.Item) bool {
		e := i.(*Extent)
		if e.End() < offset {
			return false
		}
		items = append(items, e)
		return true
	})
	return items
}

// Add marks [offset, offset+length) present, coalescing with every
// overlapping or abutting extent. Adding zero blocks is a no-op.
func (s *Set) Add(offset, length uint64) {
	if length == 0 {
		return
	}
	end := offset + length
	newStart := offset
	newEnd := end
	for _, e := range s.touching(offset, end) {
		if e.Offset < newStart {
			newStart = e.Offset
		}
		if e.End() > newEnd {
			newEnd = e.End()
		}
		s.remove(e)
	}
	s.insert(&Extent{Offset: newStart, Length: newEnd - newStart})
}

// Remove marks [offset, offset+length) absent, trimming, splitting or
// deleting stored extents. Removing zero blocks is a no-op.
func (s *Set) Remove(offset, length uint64) {
	if length == 0 {
		return
	}
	end := offset + length
	for _, e := range s.touching(offset, end) {
		if e.End() == offset || e.Offset == end {
			// Abutting only, nothing to cut.
			continue
		}
		eEnd := e.End()
		if e.Offset < offset {
			if eEnd > end {
				// The stored extent encloses the hole. Keep both
				// sides.
				s.insert(&Extent{Offset: end, Length: eEnd - end})
			}
			// Truncate the stored extent in place; its key is
			// unchanged.
			e.Length = offset - e.Offset
			continue
		}
		if eEnd > end {
			s.insert(&Extent{Offset: end, Length: eEnd - end})
		}
		s.remove(e)
	}
}

func (s *Set) insert(e *Extent) {
	if old := s.tree.ReplaceOrInsert(e); old != nil {
		log.Panicf("extent: unexpected displaced extent: %+v", old)
	}
	s.count++
}

func (s *Set) remove(e *Extent) {
	if s.tree.Delete(e) != e {
		log.Panicf("extent: extent not stored: %+v", e)
	}
	s.count--
}

func (s *Set) Contains(offset uint64) bool {
	found := false
	s.tree.DescendLessOrEqualI(offset, func(i radix.Item) bool {
		found = i.(*Extent).Contains(offset)
		return false
	})
	return found
}

func (s *Set) NextData(offset uint64) (next uint64, ok bool) {
	if s.Contains(offset) {
		return offset, true
	}
	s.tree.AscendGreaterOrEqualI(offset, func(i radix.Item) bool {
		next = i.(*Extent).Offset
		ok = true
		return false
	})
	return
}

func (s *Set) NextHole(offset uint64) (next uint64) {
	next = offset
	s.tree.DescendLessOrEqualI(offset, func(i radix.Item) bool {
		e := i.(*Extent)
		if e.Contains(offset) {
			// Stored extents never abut, so the block at e.End() is
			// always absent.
			next = e.End()
		}
		return false
	})
	return
}

func (s *Set) Iterate(start uint64, iter func(Extent) bool) {
	first := start
	if start > 0 {
		s.tree.DescendLessOrEqualI(start, func(i radix.Item) bool {
			e := i.(*Extent)
			if e.Contains(start) {
				first = e.Offset
			}
			return false
		})
	}
	s.tree.AscendGreaterOrEqualI(first, func(i radix.Item) bool {
		e := *i.(*Extent)
		if e.Offset < start {
			e.Length = e.End() - start
			e.Offset = start
		}
		return iter(e)
	})
}

func (s *Set) Len() int {
	return s.count
}

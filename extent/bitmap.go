package extent

import (
	"github.com/bits-and-blooms/bitset"
)

var _ = (Tracker)((*BitmapSet)(nil))

// BitmapSet tracks present blocks one bit per block. Suited to small,
// dense address spaces; offsets must fit in a uint. The zero value is
// an empty set.
type BitmapSet struct {
	bits bitset.BitSet
}

func (s *BitmapSet) Add(offset, length uint64) {
	for i := offset; i < offset+length; i++ {
		s.bits.Set(uint(i))
	}
}

func (s *BitmapSet) Remove(offset, length uint64) {
	for i := offset; i < offset+length; i++ {
		s.bits.Clear(uint(i))
	}
}

func (s *BitmapSet) Contains(offset uint64) bool {
	return s.bits.Test(uint(offset))
}

func (s *BitmapSet) Begin() (uint64, bool) {
	i, ok := s.bits.NextSet(0)
	return uint64(i), ok
}

func (s *BitmapSet) End() (end uint64) {
	for i := int(s.bits.Len()) - 1; i >= 0; i-- {
		if s.bits.Test(uint(i)) {
			return uint64(i) + 1
		}
	}
	return 0
}

func (s *BitmapSet) NextData(offset uint64) (uint64, bool) {
	i, ok := s.bits.NextSet(uint(offset))
	return uint64(i), ok
}

func (s *BitmapSet) NextHole(offset uint64) uint64 {
	if offset >= uint64(s.bits.Len()) {
		return offset
	}
	i, ok := s.bits.NextClear(uint(offset))
	if !ok {
		return uint64(s.bits.Len())
	}
	return uint64(i)
}

func (s *BitmapSet) Iterate(start uint64, iter func(Extent) bool) {
	off := start
	for {
		data, ok := s.NextData(off)
		if !ok {
			return
		}
		hole := s.NextHole(data)
		if !iter(Extent{Offset: data, Length: hole - data}) {
			return
		}
		off = hole
	}
}

// Len returns the number of maximal present runs.
func (s *BitmapSet) Len() int {
	count := 0
	s.Iterate(0, func(Extent) bool {
		count++
		return true
	})
	return count
}

package extent

// Extent is a half-open run of blocks [Offset, Offset+Length) on a
// uint64 address space.
type Extent struct {
	Offset, Length uint64
}

func (e *Extent) Key() uint64 {
	return e.Offset
}

func (e Extent) End() uint64 {
	return e.Offset + e.Length
}

func (e Extent) Contains(off uint64) bool {
	return off >= e.Offset && off < (e.Offset+e.Length)
}

func (e Extent) Overlaps(other Extent) bool {
	return e.Contains(other.Offset) || other.Contains(e.Offset)
}

// Tracker tracks which blocks of a uint64 address space are present.
type Tracker interface {
	Begin() (begin uint64, ok bool)
	End() (end uint64)

	Add(offset, length uint64)
	Remove(offset, length uint64)
	Contains(offset uint64) bool

	// Locate the next present block. If offset is present, returns
	// offset itself.
	NextData(offset uint64) (next uint64, ok bool)
	// Locate the next absent block. If offset is absent, returns
	// offset itself.
	NextHole(offset uint64) (next uint64)

	// Iterate calls iter for each maximal present run at or after
	// start, ascending, clipping the first run to start.
	Iterate(start uint64, iter func(Extent) bool)

	Len() int
}

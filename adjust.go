package intervalset

// EndpointAdjuster tunes the endpoints of a removal on discrete
// domains, deciding whether a shared endpoint survives. AdjustDown is
// applied to the removal start and produces the end of a surviving
// left remainder; AdjustUp is applied to the removal end and produces
// the start of a surviving right remainder. Each is evaluated once
// per Remove. A non-nil error leaves the endpoint unadjusted; the
// removal still proceeds.
type EndpointAdjuster[K any] interface {
	AdjustUp(K) (K, error)
	AdjustDown(K) (K, error)
}

type identityAdjuster[K any] struct{}

func (identityAdjuster[K]) AdjustUp(k K) (K, error) {
	return k, nil
}

func (identityAdjuster[K]) AdjustDown(k K) (K, error) {
	return k, nil
}

// Identity returns the no-op adjuster, the behavior of a continuous
// domain. Remove treats a nil adjuster the same way.
func Identity[K any]() EndpointAdjuster[K] {
	return identityAdjuster[K]{}
}

// AdjusterFuncs adapts two functions into an EndpointAdjuster. A nil
// function means no adjustment.
type AdjusterFuncs[K any] struct {
	Up   func(K) (K, error)
	Down func(K) (K, error)
}

func (a AdjusterFuncs[K]) AdjustUp(k K) (K, error) {
	if a.Up == nil {
		return k, nil
	}
	return a.Up(k)
}

func (a AdjusterFuncs[K]) AdjustDown(k K) (K, error) {
	if a.Down == nil {
		return k, nil
	}
	return a.Down(k)
}

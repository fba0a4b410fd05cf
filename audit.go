package intervalset

import (
	"cmp"
)

// AuditEntry records one segment-level transition performed by a
// single Insert or Remove. A nil Before is a creation, a nil After a
// deletion, both non-nil a mutation. The pointed-to segments are
// snapshots taken at recording time; later edits to the set never
// touch them.
type AuditEntry[K cmp.Ordered] struct {
	Before *Segment[K]
	After  *Segment[K]
}

func (e AuditEntry[K]) Created() bool {
	return e.Before == nil && e.After != nil
}

func (e AuditEntry[K]) Deleted() bool {
	return e.Before != nil && e.After == nil
}

func (e AuditEntry[K]) Mutated() bool {
	return e.Before != nil && e.After != nil
}

func (e AuditEntry[K]) String() string {
	switch {
	case e.Created():
		return "+" + e.After.String()
	case e.Deleted():
		return "-" + e.Before.String()
	case e.Mutated():
		return e.Before.String() + "->" + e.After.String()
	}
	return "(empty)"
}

// auditTrail accumulates the entries of one operation. A nil trail is
// the disabled state: recording is a no-op and no snapshots are taken.
type auditTrail[K cmp.Ordered] struct {
	entries []AuditEntry[K]
}

func (t *auditTrail[K]) created(after Segment[K]) {
	if t == nil {
		return
	}
	t.entries = append(t.entries, AuditEntry[K]{After: &after})
}

func (t *auditTrail[K]) deleted(before Segment[K]) {
	if t == nil {
		return
	}
	t.entries = append(t.entries, AuditEntry[K]{Before: &before})
}

func (t *auditTrail[K]) mutated(before, after Segment[K]) {
	if t == nil {
		return
	}
	t.entries = append(t.entries, AuditEntry[K]{Before: &before, After: &after})
}

func (t *auditTrail[K]) list() []AuditEntry[K] {
	if t == nil {
		return nil
	}
	return t.entries
}

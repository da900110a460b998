package filter

import "time"

// Kind identifies which governance a Slot is currently under.
type Kind int

const (
	// KindNone means the raw selection passes straight through.
	KindNone Kind = iota
	// KindOnUpdated means an OnUpdatedFilter transforms the raw selection
	// synchronously, inside Apply.
	KindOnUpdated
	// KindManual means a ManualFilter governs the exposed value on its own
	// schedule via the Capabilities it was bound with.
	KindManual
)

// Slot holds the filter governance and exposed value for one entity (the
// ball, or one robot id). It is not safe for concurrent use; callers must
// provide their own mutual exclusion, matching the single-threaded
// cooperative model the updaters are built on.
type Slot[T any] struct {
	epoch     uint64
	kind      Kind
	onUpdated OnUpdatedFilter[T]
	manual    ManualFilter[T]
	lastRaw   *T // most recent raw selection handed to Apply; nil if absent
	exposed   *T // current value returned by Value; nil if absent
}

// NewSlot returns an ungoverned slot: raw selections pass straight through.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{}
}

// InstallOnUpdated replaces any governance on the slot with f. The slot's
// exposed value is cleared; it is repopulated the next time Apply observes
// a raw selection for this entity.
func (s *Slot[T]) InstallOnUpdated(f OnUpdatedFilter[T]) Handle[T] {
	s.epoch++
	s.kind = KindOnUpdated
	s.onUpdated = f
	s.manual = nil
	s.exposed = nil
	return Handle[T]{slot: s, epoch: s.epoch}
}

// InstallManual replaces any governance on the slot with f, binding f's
// Capabilities immediately. The exposed value is cleared until f calls
// Write.
func (s *Slot[T]) InstallManual(f ManualFilter[T]) Handle[T] {
	s.epoch++
	epoch := s.epoch
	s.kind = KindManual
	s.manual = f
	s.onUpdated = nil
	s.exposed = nil

	f.Bind(Capabilities[T]{
		LastValue: func() (T, bool) {
			var zero T
			if s.epoch != epoch || s.lastRaw == nil {
				return zero, false
			}
			return *s.lastRaw, true
		},
		Write: func(val *T) {
			if s.epoch != epoch {
				return
			}
			s.exposed = val
		},
	})

	return Handle[T]{slot: s, epoch: epoch}
}

// Clear removes any installed filter, reverting the slot to raw passthrough.
// The exposed value is recomputed immediately from the last known raw
// selection.
func (s *Slot[T]) Clear() {
	s.epoch++
	s.kind = KindNone
	s.onUpdated = nil
	s.manual = nil
	if s.lastRaw != nil {
		v := *s.lastRaw
		s.exposed = &v
	} else {
		s.exposed = nil
	}
}

// Apply feeds the current raw selection (nil if the entity has no
// candidate) through whatever governs the slot. For KindNone the raw
// selection becomes the exposed value directly. For KindOnUpdated, the
// filter runs and its output becomes the exposed value on success; on
// error the previously exposed value is preserved and the error is
// returned. For KindManual, only lastRaw is updated — the exposed value is
// untouched here, since it is driven solely by the bound Write capability.
func (s *Slot[T]) Apply(raw *T, t time.Time) error {
	s.lastRaw = raw

	switch s.kind {
	case KindManual:
		return nil
	case KindOnUpdated:
		if raw == nil {
			s.exposed = nil
			return nil
		}
		out, err := s.onUpdated.Update(*raw, t)
		if err != nil {
			return err
		}
		s.exposed = &out
		return nil
	default:
		if raw == nil {
			s.exposed = nil
			return nil
		}
		v := *raw
		s.exposed = &v
		return nil
	}
}

// Value returns the currently exposed value, or ok == false if the entity
// is absent.
func (s *Slot[T]) Value() (T, bool) {
	var zero T
	if s.exposed == nil {
		return zero, false
	}
	return *s.exposed, true
}

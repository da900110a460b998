package filter

// Handle is a non-owning, expirable reference to whatever filter currently
// governs a Slot. It expires the moment that slot installs a different
// filter (or is cleared), even though the Slot itself lives on.
type Handle[T any] struct {
	slot  *Slot[T]
	epoch uint64
}

// Expired reports whether the filter this handle was issued for has since
// been replaced or cleared.
func (h Handle[T]) Expired() bool {
	return h.slot == nil || h.slot.epoch != h.epoch
}

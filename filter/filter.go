// Package filter implements the two-timing filter contract: OnUpdated
// filters are pushed a raw observation synchronously from inside an
// updater's update call; Manual filters read and write on their own
// schedule, driven by an external tick rather than by frame arrival.
package filter

import "time"

// OnUpdatedFilter receives the raw selected observation every time it
// changes and returns the value to expose.
type OnUpdatedFilter[T any] interface {
	Update(raw T, t time.Time) (T, error)
}

// Capabilities is handed to a ManualFilter at install time so it can read
// the updater's current raw selection and write the exposed value on its
// own schedule.
type Capabilities[T any] struct {
	// LastValue returns the most recently selected raw observation, or ok
	// == false if no camera currently holds a candidate.
	LastValue func() (T, bool)
	// Write sets (val != nil) or clears (val == nil) the exposed value.
	Write func(val *T)
}

// ManualFilter is bound to its Capabilities once, at install time, instead
// of being driven synchronously by Update.
type ManualFilter[T any] interface {
	Bind(Capabilities[T])
}

// Factory builds a fresh OnUpdatedFilter, used to lazily instantiate a
// default filter the first time a robot id appears.
type Factory[T any] func() OnUpdatedFilter[T]

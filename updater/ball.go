// Package updater implements the fusion of per-camera detections into the
// single best observation per entity: the ball, the robots of each team,
// and the static field geometry, composed behind a camera-enable mask and
// a shared affine transform.
package updater

import (
	"time"

	"github.com/koron0902/Robocup-SSL-AI/affine"
	"github.com/koron0902/Robocup-SSL-AI/filter"
	"github.com/koron0902/Robocup-SSL-AI/model"
	"github.com/koron0902/Robocup-SSL-AI/vision"
)

// Ball maintains a per-camera ball candidate and exposes the best one,
// optionally passed through a filter.
type Ball struct {
	candidates map[int]model.Ball
	transform  affine.Transform
	slot       *filter.Slot[model.Ball]
}

// NewBall returns an empty Ball updater with the identity transform and no
// installed filter.
func NewBall() *Ball {
	return &Ball{
		candidates: make(map[int]model.Ball),
		transform:  affine.Identity(),
		slot:       filter.NewSlot[model.Ball](),
	}
}

// SetTransform replaces the transform applied to future Update calls.
func (b *Ball) SetTransform(t affine.Transform) {
	b.transform = t
}

// Update folds one camera's detection frame into the ball candidate table.
// The highest-confidence ball in the frame wins (ties: first encountered);
// if the frame carries no ball, that camera's candidate is removed.
func (b *Ball) Update(frame vision.DetectionFrame) error {
	if frame.CameraID == nil {
		return nil
	}
	cam := *frame.CameraID

	best, ok := pickBestBall(frame.Balls)
	if !ok {
		delete(b.candidates, cam)
	} else {
		x, y := b.transform.ApplyPoint(best.X, best.Y)
		b.candidates[cam] = model.Ball{X: x, Y: y, Confidence: best.Confidence}
	}

	raw, ok := bestCandidate(b.candidates, func(v model.Ball) float64 { return v.Confidence })
	var rawPtr *model.Ball
	if ok {
		rawPtr = &raw
	}
	return b.slot.Apply(rawPtr, captureTime(frame.TCapture))
}

// Value returns the current exposed ball, or the zero Ball if the candidate
// set is empty and no filter holds a written value.
func (b *Ball) Value() model.Ball {
	v, _ := b.slot.Value()
	return v
}

// InstallFilter installs f as this ball's OnUpdated filter, expiring any
// prior filter handle.
func (b *Ball) InstallFilter(f filter.OnUpdatedFilter[model.Ball]) filter.Handle[model.Ball] {
	return b.slot.InstallOnUpdated(f)
}

// InstallManualFilter installs f as this ball's Manual filter, expiring any
// prior filter handle.
func (b *Ball) InstallManualFilter(f filter.ManualFilter[model.Ball]) filter.Handle[model.Ball] {
	return b.slot.InstallManual(f)
}

// ClearFilter removes any installed filter, reverting to raw passthrough.
func (b *Ball) ClearFilter() {
	b.slot.Clear()
}

// pickBestBall returns the highest-confidence ball observation in obs,
// breaking ties by first occurrence.
func pickBestBall(obs []vision.BallObservation) (vision.BallObservation, bool) {
	var best vision.BallObservation
	found := false
	for _, o := range obs {
		if !found || o.Confidence > best.Confidence {
			best = o
			found = true
		}
	}
	return best, found
}

// captureTime converts a frame's capture timestamp (seconds since epoch)
// into a time.Time.
func captureTime(tCapture float64) time.Time {
	secs := int64(tCapture)
	nsecs := int64((tCapture - float64(secs)) * float64(time.Second))
	return time.Unix(secs, nsecs).UTC()
}

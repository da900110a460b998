package updater

import (
	"sort"

	"github.com/koron0902/Robocup-SSL-AI/affine"
	"github.com/koron0902/Robocup-SSL-AI/filter"
	"github.com/koron0902/Robocup-SSL-AI/model"
	"github.com/koron0902/Robocup-SSL-AI/vision"
)

// Robot maintains, for one team color, a per-camera per-id robot candidate
// map and exposes the best candidate per id, each optionally governed by a
// per-id filter or a lazily-instantiated default filter.
type Robot struct {
	color    model.TeamColor
	byCamera map[int]map[int]model.Robot // camera id -> robot id -> candidate

	slots          map[int]*filter.Slot[model.Robot]
	defaultFactory filter.Factory[model.Robot]

	transform affine.Transform
}

// NewRobot returns an empty Robot updater for the given team color, with
// the identity transform and no filters installed.
func NewRobot(color model.TeamColor) *Robot {
	return &Robot{
		color:     color,
		byCamera:  make(map[int]map[int]model.Robot),
		slots:     make(map[int]*filter.Slot[model.Robot]),
		transform: affine.Identity(),
	}
}

// SetTransform replaces the transform applied to future Update calls.
func (r *Robot) SetTransform(t affine.Transform) {
	r.transform = t
}

// Update folds one camera's detection frame into the candidate map for
// this updater's team color. Robot ids present in this camera's previous
// frame but absent from the new one are removed; every id touched by
// either the old or the new state for this camera is then re-selected
// across all cameras and dispatched to its filter.
func (r *Robot) Update(frame vision.DetectionFrame) error {
	if frame.CameraID == nil {
		return nil
	}
	cam := *frame.CameraID

	obs := frame.RobotsBlue
	if r.color == model.Yellow {
		obs = frame.RobotsYellow
	}

	old := r.byCamera[cam]
	next := make(map[int]model.Robot, len(obs))
	affected := make(map[int]struct{}, len(old)+len(obs))

	for id := range old {
		affected[id] = struct{}{}
	}

	for _, o := range obs {
		if o.RobotID == nil {
			continue
		}
		id := *o.RobotID
		x, y := r.transform.ApplyPoint(o.X, o.Y)
		theta := r.transform.ApplyAngle(o.Theta)
		next[id] = model.Robot{ID: id, X: x, Y: y, Theta: theta, Confidence: o.Confidence}
		affected[id] = struct{}{}
	}
	r.byCamera[cam] = next

	t := captureTime(frame.TCapture)

	ids := make([]int, 0, len(affected))
	for id := range affected {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var firstErr error
	for _, id := range ids {
		raw, hasRaw := r.selectRawLocked(id)
		slot := r.slotFor(id, hasRaw)
		if slot == nil {
			continue
		}
		var rawPtr *model.Robot
		if hasRaw {
			rawPtr = &raw
		}
		if err := slot.Apply(rawPtr, t); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// selectRawLocked returns the highest-confidence candidate for id across
// every camera that currently holds one, breaking ties by lowest camera id.
func (r *Robot) selectRawLocked(id int) (model.Robot, bool) {
	byCam := make(map[int]model.Robot)
	for cam, ids := range r.byCamera {
		if v, ok := ids[id]; ok {
			byCam[cam] = v
		}
	}
	return bestCandidate(byCam, func(v model.Robot) float64 { return v.Confidence })
}

// slotFor returns the slot for id, lazily creating one (and, if a default
// filter factory is installed, instantiating it) the first time id appears
// with an actual raw candidate. Returns nil if id has never had a slot and
// has no raw candidate right now.
func (r *Robot) slotFor(id int, hasRaw bool) *filter.Slot[model.Robot] {
	if s, ok := r.slots[id]; ok {
		return s
	}
	if !hasRaw {
		return nil
	}
	s := filter.NewSlot[model.Robot]()
	if r.defaultFactory != nil {
		s.InstallOnUpdated(r.defaultFactory())
	}
	r.slots[id] = s
	return s
}

// Value materializes the current snapshot: one entry per id whose slot
// exposes a value.
func (r *Robot) Value() model.RobotSnapshot {
	snap := make(model.RobotSnapshot, len(r.slots))
	for id, s := range r.slots {
		if v, ok := s.Value(); ok {
			snap[id] = v
		}
	}
	return snap
}

// InstallFilter installs f as id's OnUpdated filter, expiring any prior
// filter handle for id.
func (r *Robot) InstallFilter(id int, f filter.OnUpdatedFilter[model.Robot]) filter.Handle[model.Robot] {
	s := r.ensureSlot(id)
	return s.InstallOnUpdated(f)
}

// InstallManualFilter installs f as id's Manual filter, expiring any prior
// filter handle for id.
func (r *Robot) InstallManualFilter(id int, f filter.ManualFilter[model.Robot]) filter.Handle[model.Robot] {
	s := r.ensureSlot(id)
	return s.InstallManual(f)
}

// ClearFilter removes any filter installed for id, reverting it to raw
// passthrough.
func (r *Robot) ClearFilter(id int) {
	if s, ok := r.slots[id]; ok {
		s.Clear()
	}
}

// InstallDefaultFilter sets the factory used to lazily instantiate a fresh
// OnUpdated filter the first time a not-yet-seen id appears.
func (r *Robot) InstallDefaultFilter(factory filter.Factory[model.Robot]) {
	r.defaultFactory = factory
}

// ClearDefaultFilter stops instantiating filters for ids seen from now on.
// It does not affect ids that already received a filter from a previous
// default factory.
func (r *Robot) ClearDefaultFilter() {
	r.defaultFactory = nil
}

// ClearAllFilters clears every installed filter, expiring every handle.
func (r *Robot) ClearAllFilters() {
	for _, s := range r.slots {
		s.Clear()
	}
}

func (r *Robot) ensureSlot(id int) *filter.Slot[model.Robot] {
	if s, ok := r.slots[id]; ok {
		return s
	}
	s := filter.NewSlot[model.Robot]()
	r.slots[id] = s
	return s
}

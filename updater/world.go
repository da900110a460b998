package updater

import (
	"github.com/koron0902/Robocup-SSL-AI/affine"
	"github.com/koron0902/Robocup-SSL-AI/model"
	"github.com/koron0902/Robocup-SSL-AI/vision"
)

// World composes a Ball updater, one Robot updater per team color, and a
// Field updater behind a camera-enable mask and a shared affine transform.
type World struct {
	ball         *Ball
	robotsBlue   *Robot
	robotsYellow *Robot
	field        *Field
	disabled     map[int]struct{}
}

// NewWorld returns an empty World with every camera enabled and the
// identity transform.
func NewWorld() *World {
	return &World{
		ball:         NewBall(),
		robotsBlue:   NewRobot(model.Blue),
		robotsYellow: NewRobot(model.Yellow),
		field:        NewField(),
		disabled:     make(map[int]struct{}),
	}
}

// Update routes a wrapper packet's detection frame (if the reporting
// camera is enabled) and geometry message (unconditionally) to the
// component updaters. Every component receives its part even if an earlier
// one fails; the first error encountered is returned.
func (w *World) Update(p vision.WrapperPacket) error {
	var firstErr error
	if p.Detection != nil {
		if p.Detection.CameraID == nil || !w.IsCameraEnabled(*p.Detection.CameraID) {
			// disabled or unattributable: discard silently, per the
			// camera-mask gating rule.
		} else {
			if err := w.ball.Update(*p.Detection); err != nil {
				firstErr = err
			}
			if err := w.robotsBlue.Update(*p.Detection); err != nil && firstErr == nil {
				firstErr = err
			}
			if err := w.robotsYellow.Update(*p.Detection); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	if p.Geometry != nil {
		w.field.Update(*p.Geometry)
	}
	return firstErr
}

// Value assembles the current snapshot from the four sub-updaters.
func (w *World) Value() model.World {
	return model.World{
		Ball:         w.ball.Value(),
		RobotsBlue:   w.robotsBlue.Value(),
		RobotsYellow: w.robotsYellow.Value(),
		Field:        w.field.Value(),
	}
}

// SetTransform constructs an Affine2D from (tx, ty, phi) and propagates it
// to the ball and both robot updaters. Field geometry is never
// transformed.
func (w *World) SetTransform(tx, ty, phi float64) {
	t := affine.New(tx, ty, phi)
	w.ball.SetTransform(t)
	w.robotsBlue.SetTransform(t)
	w.robotsYellow.SetTransform(t)
}

// EnableCamera marks id as enabled; all cameras are enabled by default.
func (w *World) EnableCamera(id int) {
	delete(w.disabled, id)
}

// DisableCamera marks id as disabled. This only suppresses future detection
// ingest for id; it does not purge candidates already recorded from it.
func (w *World) DisableCamera(id int) {
	w.disabled[id] = struct{}{}
}

// IsCameraEnabled reports whether id is currently enabled.
func (w *World) IsCameraEnabled(id int) bool {
	_, disabled := w.disabled[id]
	return !disabled
}

// Ball returns the World's ball updater, for installing filters on it.
func (w *World) Ball() *Ball {
	return w.ball
}

// RobotsBlue returns the World's blue robot updater, for installing
// filters on it.
func (w *World) RobotsBlue() *Robot {
	return w.robotsBlue
}

// RobotsYellow returns the World's yellow robot updater, for installing
// filters on it.
func (w *World) RobotsYellow() *Robot {
	return w.robotsYellow
}

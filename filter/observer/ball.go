// Package observer provides numeric OnUpdated filters that smooth a raw
// selection into a state estimate. Ball is an alpha-beta (position and
// velocity) tracker; it is the one concrete filter this module carries to
// exercise the filter contract end to end.
package observer

import (
	"time"

	"github.com/koron0902/Robocup-SSL-AI/model"
)

// Ball is an alpha-beta position/velocity tracker for model.Ball.
type Ball struct {
	alpha, beta float64

	have     bool
	x, y     float64
	vx, vy   float64
	lastTime time.Time
}

// NewBall returns a Ball observer with the given alpha (position gain) and
// beta (velocity gain).
func NewBall(alpha, beta float64) *Ball {
	return &Ball{alpha: alpha, beta: beta}
}

// Update folds one raw ball selection into the tracked state and returns
// the smoothed estimate.
func (b *Ball) Update(raw model.Ball, t time.Time) (model.Ball, error) {
	if !b.have {
		b.have = true
		b.x, b.y = raw.X, raw.Y
		b.vx, b.vy = 0, 0
		b.lastTime = t
		return model.Ball{X: b.x, Y: b.y, Confidence: raw.Confidence}, nil
	}

	dt := t.Sub(b.lastTime).Seconds()
	b.lastTime = t
	if dt <= 0 {
		return model.Ball{X: b.x, Y: b.y, VX: b.vx, VY: b.vy, Confidence: raw.Confidence}, nil
	}

	predX := b.x + b.vx*dt
	predY := b.y + b.vy*dt

	residualX := raw.X - predX
	residualY := raw.Y - predY

	b.x = predX + b.alpha*residualX
	b.y = predY + b.alpha*residualY
	b.vx += b.beta * residualX / dt
	b.vy += b.beta * residualY / dt

	return model.Ball{X: b.x, Y: b.y, VX: b.vx, VY: b.vy, Confidence: raw.Confidence}, nil
}

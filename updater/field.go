package updater

import (
	"github.com/koron0902/Robocup-SSL-AI/model"
	"github.com/koron0902/Robocup-SSL-AI/vision"
)

// Field latches the static field geometry from geometry messages.
// Dimensions are last-write-wins; the defaults are the zero Field until a
// geometry message arrives.
type Field struct {
	value model.Field
}

// NewField returns a Field updater with the zero-valued Field.
func NewField() *Field {
	return &Field{}
}

// Update copies field dimensions from g; the arc named "CenterCircle"
// contributes the center radius, other arcs are ignored.
func (f *Field) Update(g vision.Geometry) {
	f.value.Length = g.FieldLength
	f.value.Width = g.FieldWidth
	f.value.GoalWidth = g.GoalWidth
	f.value.PenaltyLength = g.PenaltyAreaLength
	f.value.PenaltyWidth = g.PenaltyAreaWidth

	for _, arc := range g.Arcs {
		if arc.Name == "CenterCircle" {
			f.value.CenterRadius = arc.Radius
			break
		}
	}
}

// Value returns the last-written field, or the zero Field if never
// written.
func (f *Field) Value() model.Field {
	return f.value
}

package model

// Field is the fused snapshot of the static field geometry.
type Field struct {
	Length        float64 // full field length, millimetres
	Width         float64 // full field width, millimetres
	CenterRadius  float64 // centre circle radius, millimetres
	GoalWidth     float64 // goal mouth width, millimetres
	PenaltyLength float64 // penalty area length, millimetres
	PenaltyWidth  float64 // penalty area width, millimetres
}

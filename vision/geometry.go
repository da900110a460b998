package vision

// FieldArc is one named circular arc from the geometry packet. The only arc
// the updater cares about is "CenterCircle", but the wire format carries
// every arc the vision software drew, so all of them pass through here.
type FieldArc struct {
	Name   string
	Radius float64
}

// Geometry is the static field geometry input, already decoded.
type Geometry struct {
	FieldLength       float64
	FieldWidth        float64
	GoalWidth         float64
	PenaltyAreaLength float64
	PenaltyAreaWidth  float64
	Arcs              []FieldArc
}

// WrapperPacket is one top-level vision packet: it carries at most one
// detection frame and at most one geometry message, and either, both or
// neither may be populated; updater.World applies whichever are present.
type WrapperPacket struct {
	Detection *DetectionFrame
	Geometry  *Geometry
}

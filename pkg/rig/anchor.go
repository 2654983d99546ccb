package rig

import "github.com/go-gl/mathgl/mgl64"

const (
	LateralUnit   = 0.08
	ProximityUnit = 0.4
)

// HandBasis is the palm frame used for every bone that has no keypoint of its
// own. It is built once per hand per frame.
type HandBasis struct {
	Wrist      mgl64.Vec3
	Direction  mgl64.Vec3
	Normal     mgl64.Vec3
	Right      mgl64.Vec3
	PalmLength float64
}

// NewHandBasis builds the palm frame from the wrist, the middle knuckle and
// the two knuckles spanning the palm width. It returns false when the palm
// has collapsed to a line or a point.
func NewHandBasis(wrist, indexMCP, middleMCP, pinkyMCP mgl64.Vec3) (HandBasis, bool) {
	toMiddle := middleMCP.Sub(wrist)
	palmLength := toMiddle.Len()
	if palmLength < epsilon {
		return HandBasis{}, false
	}
	direction := toMiddle.Mul(1 / palmLength)

	normal := pinkyMCP.Sub(indexMCP).Cross(direction)
	if normal.Len() < epsilon {
		return HandBasis{}, false
	}
	normal = normal.Normalize()
	right := direction.Cross(normal).Normalize()

	b := HandBasis{
		Wrist:      wrist,
		Direction:  direction,
		Normal:     normal,
		Right:      right,
		PalmLength: palmLength,
	}
	if !finiteVec(b.Direction) || !finiteVec(b.Normal) || !finiteVec(b.Right) {
		return HandBasis{}, false
	}
	return b, true
}

// Anchor returns a synthetic point on the palm. lateral runs across the palm
// in LateralUnit steps, proximity runs from the wrist toward the knuckles as a
// fraction of ProximityUnit palm lengths.
func (b HandBasis) Anchor(lateral, proximity float64) mgl64.Vec3 {
	return b.Wrist.
		Add(b.Right.Mul(lateral * LateralUnit)).
		Add(b.Direction.Mul(proximity * ProximityUnit * b.PalmLength))
}

func (b HandBasis) Rotation() mgl64.Quat {
	return basisRotation(b.Right, b.Direction, b.Normal)
}

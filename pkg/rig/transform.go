package rig

import (
	"AnatomyOverlay/internal/entity"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	epsilon   = 1e-9
	headScale = 1.8
)

var upAxis = mgl64.Vec3{0, 1, 0}

// Style controls how a two-point bone is drawn. ShaftFraction shortens the
// shaft so the head caps stay visible, Girth widens the shaft relative to the
// nominal radius.
type Style struct {
	ShaftFraction float64
	Girth         float64
	ShowHeads     bool
}

var (
	StyleJoint      = Style{ShaftFraction: 0.7, Girth: 1.2, ShowHeads: true}
	StyleMetacarpal = Style{ShaftFraction: 0.7, Girth: 1.2}
	StyleForearm    = Style{ShaftFraction: 1, Girth: 1.2}
	StyleLongBone   = Style{ShaftFraction: 1, Girth: 1}
	StyleLigament   = Style{ShaftFraction: 1, Girth: 1}
)

type Placement struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Scale       mgl64.Vec3
	Length      float64
	Heads       []entity.Head
}

// TwoPoint places a cylinder between start and end. The canonical +Y axis is
// carried onto the bone direction by the shortest arc, so roll about the bone
// axis is unspecified. It returns false when the points coincide.
func TwoPoint(start, end mgl64.Vec3, radius float64, style Style) (Placement, bool) {
	delta := end.Sub(start)
	length := delta.Len()
	if length < epsilon || !finiteVec(delta) {
		return Placement{}, false
	}

	direction := delta.Mul(1 / length)
	p := Placement{
		Position:    start.Add(end).Mul(0.5),
		Orientation: mgl64.QuatBetweenVectors(upAxis, direction),
		Scale: mgl64.Vec3{
			radius * style.Girth,
			length * style.ShaftFraction,
			radius * style.Girth,
		},
		Length: length,
	}

	if style.ShowHeads {
		p.Heads = []entity.Head{
			{Offset: [3]float64{0, length / 2, 0}, Scale: radius * headScale},
			{Offset: [3]float64{0, -length / 2, 0}, Scale: radius * headScale},
		}
	}

	if !p.finite() {
		return Placement{}, false
	}
	return p, true
}

// Oriented places a fixed-size primitive at a point with a given rotation.
func Oriented(at mgl64.Vec3, rotation mgl64.Quat, size mgl64.Vec3) (Placement, bool) {
	p := Placement{
		Position:    at,
		Orientation: rotation.Normalize(),
		Scale:       size,
	}
	if !p.finite() {
		return Placement{}, false
	}
	return p, true
}

// basisRotation converts three orthonormal column vectors into a quaternion.
func basisRotation(x, y, z mgl64.Vec3) mgl64.Quat {
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
}

func (p Placement) finite() bool {
	if !finiteVec(p.Position) || !finiteVec(p.Scale) || !finiteVec(p.Orientation.V) {
		return false
	}
	return finite(p.Orientation.W) && finite(p.Length)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v mgl64.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

func toArray(v mgl64.Vec3) [3]float64 {
	return [3]float64{v[0], v[1], v[2]}
}

func quatArray(q mgl64.Quat) [4]float64 {
	return [4]float64{q.V[0], q.V[1], q.V[2], q.W}
}

package rig

import "github.com/go-gl/mathgl/mgl64"

const (
	skullScale = 1.6
	skullLift  = 0.55
)

// Skull anchors the skull mesh between the ears. The mesh is scaled by the
// ear distance and lifted so its base sits near ear height. The basis is
// orthonormalised with x along the eye line, y up and z out of the face.
func Skull(nose, leftEye, rightEye, leftEar, rightEar mgl64.Vec3) (Placement, bool) {
	center := leftEar.Add(rightEar).Mul(0.5)
	earDistance := rightEar.Sub(leftEar).Len()
	if earDistance < epsilon {
		return Placement{}, false
	}

	eye := rightEye.Sub(leftEye)
	back := center.Sub(nose)
	if eye.Len() < epsilon || back.Len() < epsilon {
		return Placement{}, false
	}
	eye = eye.Normalize()

	up := eye.Cross(back.Normalize())
	if up.Len() < epsilon {
		return Placement{}, false
	}
	up = up.Normalize()
	facing := eye.Cross(up)

	scale := earDistance * skullScale
	at := center.Add(mgl64.Vec3{0, scale * skullLift, 0})

	return Oriented(at, basisRotation(eye, up, facing), mgl64.Vec3{scale, scale, scale})
}

package rig

import (
	"AnatomyOverlay/internal/entity"

	"github.com/go-gl/mathgl/mgl64"
)

var viewAxis = mgl64.Vec3{0, 0, 1}

// Evaluate places every bone of the static table for one snapshot.
func Evaluate(snap entity.LandmarkSnapshot, vp entity.Viewport) entity.RigFrame {
	return EvaluateSpecs(catalog, snap, vp)
}

func EvaluateSpecs(specs []BoneSpec, snap entity.LandmarkSnapshot, vp entity.Viewport) entity.RigFrame {
	f := &frame{
		snap:     snap,
		proj:     NewProjector(vp),
		hands:    make(map[entity.Side]*handState, 2),
		forearms: make(map[entity.Side]*forearmState, 2),
	}

	bones := make([]entity.BoneTransform, 0, len(specs))
	for _, spec := range specs {
		bones = append(bones, f.place(spec))
	}

	return entity.RigFrame{
		FrameID:       snap.FrameID,
		Bones:         bones,
		DetectedParts: DetectParts(snap),
	}
}

// frame holds the per-snapshot state shared by bones of the same side. The
// hand basis and forearm axis are computed at most once per side.
type frame struct {
	snap     entity.LandmarkSnapshot
	proj     Projector
	hands    map[entity.Side]*handState
	forearms map[entity.Side]*forearmState
}

type handState struct {
	basis  HandBasis
	reason entity.HiddenReason
}

type forearmState struct {
	elbow  mgl64.Vec3
	wrist  mgl64.Vec3
	perp   mgl64.Vec3
	reason entity.HiddenReason
}

func (f *frame) place(spec BoneSpec) entity.BoneTransform {
	var (
		p      Placement
		reason entity.HiddenReason
	)

	switch spec.Primitive {
	case entity.PrimitiveSkull:
		p, reason = f.skull()
	case entity.PrimitiveBox:
		p, reason = f.box(spec)
	default:
		p, reason = f.cylinder(spec)
	}

	return render(spec, p, reason)
}

func (f *frame) cylinder(spec BoneSpec) (Placement, entity.HiddenReason) {
	start, reason := f.resolve(spec.Side, spec.Start)
	if reason != "" {
		return Placement{}, reason
	}
	end, reason := f.resolve(spec.Side, spec.End)
	if reason != "" {
		return Placement{}, reason
	}

	p, ok := TwoPoint(start, end, spec.Radius, spec.Style)
	if !ok {
		return Placement{}, entity.HiddenDegenerate
	}
	return p, ""
}

func (f *frame) box(spec BoneSpec) (Placement, entity.HiddenReason) {
	hs := f.hand(spec.Side)
	if hs.reason != "" {
		return Placement{}, hs.reason
	}
	at, reason := f.resolve(spec.Side, spec.Start)
	if reason != "" {
		return Placement{}, reason
	}

	p, ok := Oriented(at, hs.basis.Rotation(), spec.Size)
	if !ok {
		return Placement{}, entity.HiddenDegenerate
	}
	return p, ""
}

func (f *frame) skull() (Placement, entity.HiddenReason) {
	var pts [5]mgl64.Vec3
	for i, idx := range []int{PoseNose, PoseLeftEye, PoseRightEye, PoseLeftEar, PoseRightEar} {
		v, reason := f.point(f.snap.Pose, idx)
		if reason != "" {
			return Placement{}, reason
		}
		pts[i] = v
	}

	p, ok := Skull(pts[0], pts[1], pts[2], pts[3], pts[4])
	if !ok {
		return Placement{}, entity.HiddenDegenerate
	}
	return p, ""
}

func (f *frame) resolve(side entity.Side, e Endpoint) (mgl64.Vec3, entity.HiddenReason) {
	switch e.Kind {
	case EndpointPalmAnchor:
		hs := f.hand(side)
		if hs.reason != "" {
			return mgl64.Vec3{}, hs.reason
		}
		return hs.basis.Anchor(e.Lateral, e.Proximity), ""
	case EndpointForearm:
		fs := f.forearm(side)
		if fs.reason != "" {
			return mgl64.Vec3{}, fs.reason
		}
		joint := fs.elbow
		if e.Joint == ForearmWrist {
			joint = fs.wrist
		}
		return joint.Add(fs.perp.Mul(e.Offset)), ""
	default:
		if e.Region == RegionHand {
			return f.point(f.snap.Hand(side), e.Index)
		}
		return f.point(f.snap.Pose, e.Index)
	}
}

func (f *frame) point(kps []entity.Keypoint, index int) (mgl64.Vec3, entity.HiddenReason) {
	if index < 0 || index >= len(kps) {
		return mgl64.Vec3{}, entity.HiddenMissingKeypoint
	}
	v, ok := f.proj.Project(kps[index])
	if !ok {
		return mgl64.Vec3{}, entity.HiddenLowVisibility
	}
	return v, ""
}

func (f *frame) hand(side entity.Side) *handState {
	if hs, ok := f.hands[side]; ok {
		return hs
	}

	hs := &handState{reason: entity.HiddenAnchorUnavailable}
	f.hands[side] = hs

	kps := f.snap.Hand(side)
	var pts [4]mgl64.Vec3
	for i, idx := range []int{HandWrist, IndexMCP, MiddleMCP, PinkyMCP} {
		v, reason := f.point(kps, idx)
		if reason != "" {
			return hs
		}
		pts[i] = v
	}

	basis, ok := NewHandBasis(pts[0], pts[1], pts[2], pts[3])
	if !ok {
		return hs
	}
	hs.basis, hs.reason = basis, ""
	return hs
}

func (f *frame) forearm(side entity.Side) *forearmState {
	if fs, ok := f.forearms[side]; ok {
		return fs
	}

	elbowIdx, wristIdx := PoseLeftElbow, PoseLeftWrist
	if side == entity.SideRight {
		elbowIdx, wristIdx = PoseRightElbow, PoseRightWrist
	}

	fs := &forearmState{}
	f.forearms[side] = fs

	elbow, reason := f.point(f.snap.Pose, elbowIdx)
	if reason != "" {
		fs.reason = reason
		return fs
	}

	// the tracked hand wrist is steadier than the pose wrist
	wrist, reason := f.point(f.snap.Hand(side), HandWrist)
	if reason != "" {
		wrist, reason = f.point(f.snap.Pose, wristIdx)
	}
	if reason != "" {
		fs.reason = reason
		return fs
	}

	perp := wrist.Sub(elbow).Cross(viewAxis)
	if perp.Len() < epsilon {
		fs.reason = entity.HiddenDegenerate
		return fs
	}

	fs.elbow, fs.wrist, fs.perp = elbow, wrist, perp.Normalize()
	return fs
}

func render(spec BoneSpec, p Placement, reason entity.HiddenReason) entity.BoneTransform {
	bt := entity.BoneTransform{
		ID:          spec.ID(),
		Name:        spec.Name,
		Part:        spec.Part,
		Side:        spec.Side,
		Kind:        spec.Kind,
		Primitive:   spec.Primitive,
		Orientation: [4]float64{0, 0, 0, 1},
	}
	if reason != "" {
		bt.HiddenReason = reason
		return bt
	}

	bt.Visible = true
	bt.Position = toArray(p.Position)
	bt.Orientation = quatArray(p.Orientation)
	bt.Scale = toArray(p.Scale)
	bt.Length = p.Length
	bt.Heads = p.Heads
	return bt
}

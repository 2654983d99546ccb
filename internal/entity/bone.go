package entity

type BoneKind string

const (
	BoneKindPhalanx    BoneKind = "phalanx"
	BoneKindMetacarpal BoneKind = "metacarpal"
	BoneKindCarpal     BoneKind = "carpal"
	BoneKindLigament   BoneKind = "ligament"
	BoneKindLongBone   BoneKind = "long_bone"
	BoneKindSkull      BoneKind = "skull"
)

type Primitive string

const (
	PrimitiveCylinder Primitive = "cylinder"
	PrimitiveBox      Primitive = "box"
	PrimitiveSkull    Primitive = "skull"
)

type HiddenReason string

const (
	HiddenMissingKeypoint   HiddenReason = "missing_keypoint"
	HiddenLowVisibility     HiddenReason = "low_visibility"
	HiddenAnchorUnavailable HiddenReason = "anchor_unavailable"
	HiddenDegenerate        HiddenReason = "degenerate"
)

// Head is a joint cap placed along the bone's local up axis.
type Head struct {
	Offset [3]float64 `json:"offset"`
	Scale  float64    `json:"scale"`
}

// BoneTransform is the renderer-facing placement of one bone for one frame.
// Orientation is a quaternion in x, y, z, w order.
type BoneTransform struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Part         string       `json:"part"`
	Side         Side         `json:"side,omitempty"`
	Kind         BoneKind     `json:"kind"`
	Primitive    Primitive    `json:"primitive"`
	Visible      bool         `json:"visible"`
	HiddenReason HiddenReason `json:"hiddenReason,omitempty"`
	Position     [3]float64   `json:"position"`
	Orientation  [4]float64   `json:"orientation"`
	Scale        [3]float64   `json:"scale"`
	Length       float64      `json:"length"`
	Heads        []Head       `json:"heads,omitempty"`
}

type RigFrame struct {
	FrameID       string          `json:"frameId,omitempty"`
	Bones         []BoneTransform `json:"bones"`
	DetectedParts []string        `json:"detectedParts"`
}

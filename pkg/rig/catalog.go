package rig

import (
	"AnatomyOverlay/internal/entity"

	"github.com/go-gl/mathgl/mgl64"
)

type Region int

const (
	RegionPose Region = iota
	RegionHand
)

type EndpointKind int

const (
	EndpointLandmark EndpointKind = iota
	EndpointPalmAnchor
	EndpointForearm
)

type ForearmJoint int

const (
	ForearmElbow ForearmJoint = iota
	ForearmWrist
)

// Endpoint says where one end of a bone comes from. Hand regions and forearm
// joints resolve against the side of the bone that owns the endpoint.
type Endpoint struct {
	Kind      EndpointKind
	Region    Region
	Index     int
	Lateral   float64
	Proximity float64
	Joint     ForearmJoint
	Offset    float64
}

// BoneSpec is one row of the static bone table.
type BoneSpec struct {
	Name      string
	Part      string
	Side      entity.Side
	Kind      entity.BoneKind
	Primitive entity.Primitive
	Start     Endpoint
	End       Endpoint
	Radius    float64
	Style     Style
	Size      mgl64.Vec3
}

func (s BoneSpec) ID() string {
	if s.Side == entity.SideNone {
		return s.Part
	}
	return string(s.Side) + "_" + s.Part
}

const (
	forearmOffset  = 0.08
	ligamentRadius = 0.008
	humerusRadius  = 0.025
	forearmRadius  = 0.01

	proximalRow = 0.15
	distalRow   = 0.55
)

var carpalSize = mgl64.Vec3{0.045, 0.035, 0.045}

func pose(index int) Endpoint {
	return Endpoint{Kind: EndpointLandmark, Region: RegionPose, Index: index}
}

func hand(index int) Endpoint {
	return Endpoint{Kind: EndpointLandmark, Region: RegionHand, Index: index}
}

func palm(lateral, proximity float64) Endpoint {
	return Endpoint{Kind: EndpointPalmAnchor, Lateral: lateral, Proximity: proximity}
}

func forearm(joint ForearmJoint, offset float64) Endpoint {
	return Endpoint{Kind: EndpointForearm, Joint: joint, Offset: offset}
}

type phalanx struct {
	name, part string
	start, end int
	radius     float64
}

var phalanges = []phalanx{
	{"1st Metacarpal (Thumb)", "first_metacarpal", ThumbCMC, ThumbMCP, 0.014},
	{"Thumb Proximal Phalanx", "thumb_proximal_phalanx", ThumbMCP, ThumbIP, 0.013},
	{"Thumb Distal Phalanx", "thumb_distal_phalanx", ThumbIP, ThumbTip, 0.012},
	{"Index Proximal Phalanx", "index_proximal_phalanx", IndexMCP, IndexPIP, 0.013},
	{"Index Middle Phalanx", "index_middle_phalanx", IndexPIP, IndexDIP, 0.011},
	{"Index Distal Phalanx", "index_distal_phalanx", IndexDIP, IndexTip, 0.010},
	{"Middle Proximal Phalanx", "middle_proximal_phalanx", MiddleMCP, MiddlePIP, 0.013},
	{"Middle Middle Phalanx", "middle_middle_phalanx", MiddlePIP, MiddleDIP, 0.011},
	{"Middle Distal Phalanx", "middle_distal_phalanx", MiddleDIP, MiddleTip, 0.010},
	{"Ring Proximal Phalanx", "ring_proximal_phalanx", RingMCP, RingPIP, 0.012},
	{"Ring Middle Phalanx", "ring_middle_phalanx", RingPIP, RingDIP, 0.010},
	{"Ring Distal Phalanx", "ring_distal_phalanx", RingDIP, RingTip, 0.009},
	{"Pinky Proximal Phalanx", "pinky_proximal_phalanx", PinkyMCP, PinkyPIP, 0.011},
	{"Pinky Middle Phalanx", "pinky_middle_phalanx", PinkyPIP, PinkyDIP, 0.009},
	{"Pinky Distal Phalanx", "pinky_distal_phalanx", PinkyDIP, PinkyTip, 0.008},
}

type metacarpal struct {
	name, part string
	knuckle    int
	lateral    float64
	radius     float64
}

var metacarpals = []metacarpal{
	{"1st Metacarpal Base (Thumb)", "first_metacarpal_base", ThumbCMC, -2.0, 0.017},
	{"2nd Metacarpal (Index)", "second_metacarpal", IndexMCP, -0.7, 0.018},
	{"3rd Metacarpal (Middle)", "third_metacarpal", MiddleMCP, -0.2, 0.018},
	{"4th Metacarpal (Ring)", "fourth_metacarpal", RingMCP, 0.7, 0.018},
	{"5th Metacarpal (Pinky)", "fifth_metacarpal", PinkyMCP, 2.0, 0.017},
}

type carpal struct {
	name, part string
	lateral    float64
	proximity  float64
}

var carpals = []carpal{
	{"Scaphoid", "scaphoid", -1.2, proximalRow},
	{"Lunate", "lunate", -0.5, proximalRow},
	{"Triquetrum", "triquetrum", 0.5, proximalRow},
	{"Pisiform", "pisiform", 1.2, proximalRow},
	{"Trapezium", "trapezium", -2.0, distalRow},
	{"Trapezoid", "trapezoid", -0.7, distalRow},
	{"Capitate", "capitate", 0.7, distalRow},
	{"Hamate", "hamate", 2.0, distalRow},
}

// ligaments join each proximal carpal to the distal carpal in the same column.
var ligaments = [][2]int{{0, 4}, {1, 5}, {2, 6}, {3, 7}}

var catalog = buildCatalog()

// Catalog returns a copy of the static bone table in evaluation order.
func Catalog() []BoneSpec {
	out := make([]BoneSpec, len(catalog))
	copy(out, catalog)
	return out
}

func buildCatalog() []BoneSpec {
	var specs []BoneSpec

	specs = append(specs, BoneSpec{
		Name:      "Skull",
		Part:      "skull",
		Kind:      entity.BoneKindSkull,
		Primitive: entity.PrimitiveSkull,
	})

	for _, side := range []entity.Side{entity.SideLeft, entity.SideRight} {
		specs = append(specs, armBones(side)...)
		specs = append(specs, handBones(side)...)
	}

	return specs
}

func armBones(side entity.Side) []BoneSpec {
	shoulder, elbow, label := PoseLeftShoulder, PoseLeftElbow, "Left"
	if side == entity.SideRight {
		shoulder, elbow, label = PoseRightShoulder, PoseRightElbow, "Right"
	}

	return []BoneSpec{
		{
			Name:      label + " Humerus (Upper Arm)",
			Part:      "humerus",
			Side:      side,
			Kind:      entity.BoneKindLongBone,
			Primitive: entity.PrimitiveCylinder,
			Start:     pose(shoulder),
			End:       pose(elbow),
			Radius:    humerusRadius,
			Style:     StyleLongBone,
		},
		{
			Name:      "Radius (Forearm - Thumb Side)",
			Part:      "radius",
			Side:      side,
			Kind:      entity.BoneKindLongBone,
			Primitive: entity.PrimitiveCylinder,
			Start:     forearm(ForearmElbow, -forearmOffset),
			End:       forearm(ForearmWrist, -forearmOffset),
			Radius:    forearmRadius,
			Style:     StyleForearm,
		},
		{
			Name:      "Ulna (Forearm - Pinky Side)",
			Part:      "ulna",
			Side:      side,
			Kind:      entity.BoneKindLongBone,
			Primitive: entity.PrimitiveCylinder,
			Start:     forearm(ForearmElbow, forearmOffset),
			End:       forearm(ForearmWrist, forearmOffset),
			Radius:    forearmRadius,
			Style:     StyleForearm,
		},
	}
}

func handBones(side entity.Side) []BoneSpec {
	var specs []BoneSpec

	for _, c := range carpals {
		specs = append(specs, BoneSpec{
			Name:      c.name,
			Part:      c.part,
			Side:      side,
			Kind:      entity.BoneKindCarpal,
			Primitive: entity.PrimitiveBox,
			Start:     palm(c.lateral, c.proximity),
			Size:      carpalSize,
		})
	}

	for _, l := range ligaments {
		from, to := carpals[l[0]], carpals[l[1]]
		specs = append(specs, BoneSpec{
			Name:      from.name + "-" + to.name + " Ligament",
			Part:      from.part + "_" + to.part + "_ligament",
			Side:      side,
			Kind:      entity.BoneKindLigament,
			Primitive: entity.PrimitiveCylinder,
			Start:     palm(from.lateral, from.proximity),
			End:       palm(to.lateral, to.proximity),
			Radius:    ligamentRadius,
			Style:     StyleLigament,
		})
	}

	for _, m := range metacarpals {
		specs = append(specs, BoneSpec{
			Name:      m.name,
			Part:      m.part,
			Side:      side,
			Kind:      entity.BoneKindMetacarpal,
			Primitive: entity.PrimitiveCylinder,
			Start:     palm(m.lateral, distalRow),
			End:       hand(m.knuckle),
			Radius:    m.radius,
			Style:     StyleMetacarpal,
		})
	}

	for _, p := range phalanges {
		kind := entity.BoneKindPhalanx
		// the thumb's CMC to MCP segment is its metacarpal
		if p.start == ThumbCMC {
			kind = entity.BoneKindMetacarpal
		}
		specs = append(specs, BoneSpec{
			Name:      p.name,
			Part:      p.part,
			Side:      side,
			Kind:      kind,
			Primitive: entity.PrimitiveCylinder,
			Start:     hand(p.start),
			End:       hand(p.end),
			Radius:    p.radius,
			Style:     StyleJoint,
		})
	}

	return specs
}

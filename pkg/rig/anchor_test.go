package rig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHandBasisAnchor(t *testing.T) {
	basis, ok := NewHandBasis(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{-0.3, 0.9, 0},
		mgl64.Vec3{0, 1, 0},
		mgl64.Vec3{0.3, 0.9, 0},
	)
	if !ok {
		t.Fatal("expected a basis")
	}

	if !basis.Right.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("right = %v", basis.Right)
	}
	if !basis.Normal.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("normal = %v", basis.Normal)
	}

	got := basis.Anchor(-1.2, 0.15)
	want := mgl64.Vec3{-1.2 * LateralUnit, 0.15 * ProximityUnit, 0}
	if !got.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("anchor = %v, want %v", got, want)
	}
}

func TestHandBasisScalesWithPalm(t *testing.T) {
	small, _ := NewHandBasis(mgl64.Vec3{}, mgl64.Vec3{-1, 1, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 1, 0})
	large, _ := NewHandBasis(mgl64.Vec3{}, mgl64.Vec3{-1, 2, 0}, mgl64.Vec3{0, 2, 0}, mgl64.Vec3{1, 2, 0})

	if math.Abs(large.Anchor(0, 0.55)[1]-2*small.Anchor(0, 0.55)[1]) > 1e-12 {
		t.Error("proximity offset must be proportional to palm length")
	}
	if large.Anchor(1, 0)[0] != small.Anchor(1, 0)[0] {
		t.Error("lateral offset must not depend on palm length")
	}
}

func TestHandBasisOrthonormal(t *testing.T) {
	basis, ok := NewHandBasis(
		mgl64.Vec3{0.1, -0.2, 0.05},
		mgl64.Vec3{0.3, 0.4, -0.1},
		mgl64.Vec3{0.15, 0.5, 0.02},
		mgl64.Vec3{-0.1, 0.35, 0.1},
	)
	if !ok {
		t.Fatal("expected a basis")
	}

	for _, v := range []mgl64.Vec3{basis.Right, basis.Direction, basis.Normal} {
		if math.Abs(v.Len()-1) > 1e-9 {
			t.Errorf("%v is not unit length", v)
		}
	}
	if math.Abs(basis.Right.Dot(basis.Direction)) > 1e-9 ||
		math.Abs(basis.Right.Dot(basis.Normal)) > 1e-9 ||
		math.Abs(basis.Direction.Dot(basis.Normal)) > 1e-9 {
		t.Error("basis vectors are not orthogonal")
	}
}

func TestHandBasisRotation(t *testing.T) {
	basis, ok := NewHandBasis(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0.9, 0.3, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0.9, -0.3, 0},
	)
	if !ok {
		t.Fatal("expected a basis")
	}

	q := basis.Rotation()
	cases := map[mgl64.Vec3]mgl64.Vec3{
		{1, 0, 0}: basis.Right,
		{0, 1, 0}: basis.Direction,
		{0, 0, 1}: basis.Normal,
	}
	for local, world := range cases {
		if got := q.Rotate(local); !got.ApproxEqualThreshold(world, 1e-9) {
			t.Errorf("rotate %v = %v, want %v", local, got, world)
		}
	}
}

func TestHandBasisDegenerate(t *testing.T) {
	wrist := mgl64.Vec3{0, 0, 0}

	if _, ok := NewHandBasis(wrist, mgl64.Vec3{-1, 1, 0}, wrist, mgl64.Vec3{1, 1, 0}); ok {
		t.Error("zero palm length must fail")
	}
	if _, ok := NewHandBasis(wrist, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 2, 0}); ok {
		t.Error("palm width parallel to palm direction must fail")
	}
}

package types

import "testing"

func TestVec3Arithmetic(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, 5, 6)

	if got, exp := a.Add(b), XYZ(5, 7, 9); got != exp {
		t.Fatalf("expected a+b to be %v; got %v", exp, got)
	}
	if got, exp := b.Sub(a), XYZ(3, 3, 3); got != exp {
		t.Fatalf("expected b-a to be %v; got %v", exp, got)
	}
	if got, exp := a.Mul(2), XYZ(2, 4, 6); got != exp {
		t.Fatalf("expected 2a to be %v; got %v", exp, got)
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("expected a.b to be 32; got %f", got)
	}
	if got, exp := XYZ(1, 0, 0).Cross(XYZ(0, 1, 0)), XYZ(0, 0, 1); got != exp {
		t.Fatalf("expected x cross y to be %v; got %v", exp, got)
	}
	if got := b.MaxComponent(); got != 6 {
		t.Fatalf("expected max component to be 6; got %f", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := XYZ(3, 0, 4).Normalize()
	if exp := XYZ(0.6, 0, 0.8); n.Sub(exp).Len() > floatCmpEpsilon {
		t.Fatalf("expected normalized vector to be %v; got %v", exp, n)
	}

	var zero Vec3
	if !zero.Normalize().IsZero() {
		t.Fatal("expected zero vector to normalize to the zero vector")
	}
}

func TestVec3String(t *testing.T) {
	if got, exp := XYZ(1, 0.5, -2).String(), "{1, 0.5, -2}"; got != exp {
		t.Fatalf("expected %q; got %q", exp, got)
	}
}

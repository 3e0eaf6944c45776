package waveshade

import "testing"

func TestPromotionTags(t *testing.T) {
	for _, b := range []Basis{{}, {1, 2, 3}, {-4, 0.5, 9}} {
		if p := PointOf(b); p.W != 1 {
			t.Fatalf("PointOf(%+v).W = %v, want 1", b, p.W)
		}
		if v := VectorOf(b); v.W != 0 {
			t.Fatalf("VectorOf(%+v).W = %v, want 0", b, v.W)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := PointOf(Basis{1, 2, 3})
	v := VectorOf(Basis{-1, 1, 0})
	q := p.Add(v)
	if q != (Point{0, 3, 3, 1}) {
		t.Fatalf("Add mismatch: %+v", q)
	}
}

func TestPointSubYieldsVector(t *testing.T) {
	p := PointOf(Basis{5, 1, -2})
	q := PointOf(Basis{2, 0, 4})
	d := p.Sub(q)
	if d != (Vector{3, 1, -6, 0}) {
		t.Fatalf("Sub mismatch: %+v", d)
	}
}

func TestVectorDotIsSpatial(t *testing.T) {
	// The homogeneous coordinate must never leak into the dot product.
	a := Vector{1, 2, 3, 5}
	b := Vector{4, -1, 2, 7}
	if a.Dot(b) != 8 {
		t.Fatalf("Dot mismatch: %.12g", a.Dot(b))
	}
	if a.LenSq() != 14 {
		t.Fatalf("LenSq mismatch: %.12g", a.LenSq())
	}
}

func TestVectorNormKeepsTag(t *testing.T) {
	v := VectorOf(Basis{3, 0, 4})
	n := v.Norm()
	if !nearly(n.Len(), 1, 1e-12) {
		t.Fatalf("Norm not unit: %.12g", n.Len())
	}
	if n.W != 0 {
		t.Fatalf("Norm changed W: %v", n.W)
	}
	z := Vector{}
	if z.Norm() != (Vector{}) {
		t.Fatal("Norm of zero vector must stay zero")
	}
}

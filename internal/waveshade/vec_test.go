package waveshade

import (
	"math"
	"testing"
)

func nearly(a, b Real, tol Real) bool { return math.Abs(float64(a-b)) <= float64(tol) }

func TestBasisOps(t *testing.T) {
	v := Basis{1, 2, 3}
	w := Basis{-1, 0.5, 2}
	s := Real(3)

	add := v.Add(w)
	if add != (Basis{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	sub := v.Sub(w)
	if sub != (Basis{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	mul := v.Mul(s)
	if mul != (Basis{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	dot := v.Dot(w)
	wantDot := Real(1*(-1) + 2*0.5 + 3*2)
	if dot != wantDot {
		t.Fatalf("Dot mismatch: got %.12g want %.12g", dot, wantDot)
	}
	if v.LenSq() != 14 {
		t.Fatalf("LenSq mismatch: %.12g", v.LenSq())
	}
	if !nearly(v.Len(), math.Sqrt(14), 1e-12) {
		t.Fatalf("Len mismatch: %.12g", v.Len())
	}
	n := v.Norm()
	if !nearly(n.Len(), 1, 1e-12) {
		t.Fatalf("Norm not unit: %.12g", n.Len())
	}
}

func TestBasisNormZero(t *testing.T) {
	z := Basis{}
	if z.Norm() != (Basis{}) {
		t.Fatal("Norm of zero tuple must stay zero")
	}
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{2, 6}
	b := Vec2{0.5, 3}
	if a.Add(b) != (Vec2{2.5, 9}) {
		t.Fatalf("Add mismatch: %+v", a.Add(b))
	}
	if a.Sub(b) != (Vec2{1.5, 3}) {
		t.Fatalf("Sub mismatch: %+v", a.Sub(b))
	}
	if a.MulVec(b) != (Vec2{1, 18}) {
		t.Fatalf("MulVec mismatch: %+v", a.MulVec(b))
	}
	if a.Mul(2) != (Vec2{4, 12}) {
		t.Fatalf("Mul mismatch: %+v", a.Mul(2))
	}
}

package waveshade

import (
	"math"
	"testing"
)

func TestRotYZeroIsIdentity(t *testing.T) {
	// Exact: cos(0)=1, sin(0)=0, no epsilon needed.
	if RotY(0) != I3() {
		t.Fatalf("RotY(0) != I3: %+v", RotY(0))
	}
}

func TestRotYIsOrthonormal(t *testing.T) {
	R := RotY(math.Pi / 7)
	P := R.Transpose().Mul(R)
	I := I3()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			diff := math.Abs(float64(P.M[r][c] - I.M[r][c]))
			if diff > 1e-12 {
				t.Fatalf("R^T R != I at (%d,%d): %.3g", r, c, diff)
			}
		}
	}
}

func TestRotYQuarterTurn(t *testing.T) {
	// 90° about Y: (0,0,-1) -> (-1,0,0), (1,0,0) -> (0,0,-1).
	R := RotY(math.Pi / 2)
	o := R.MulBasis(Basis{0, 0, -1})
	if !nearly(o.X, -1, 1e-12) || !nearly(o.Y, 0, 1e-12) || !nearly(o.Z, 0, 1e-12) {
		t.Fatalf("RotY forward failed: %+v", o)
	}
	o = R.MulBasis(Basis{1, 0, 0})
	if !nearly(o.X, 0, 1e-12) || !nearly(o.Z, -1, 1e-12) {
		t.Fatalf("RotY right failed: %+v", o)
	}
}

func TestRotYKeepsVertical(t *testing.T) {
	R := RotY(1.234)
	o := R.MulBasis(Basis{0, 1, 0})
	if o != (Basis{0, 1, 0}) {
		t.Fatalf("vertical axis moved: %+v", o)
	}
}

package terrain

import (
	"math"
	"testing"

	"github.com/lixenwraith/block-walker/constant"
)

// TestSineFieldDeterministic verifies repeated calls return identical values
func TestSineFieldDeterministic(t *testing.T) {
	var f SineField
	for x := -50; x <= 50; x += 7 {
		for z := -50; z <= 50; z += 7 {
			a := f.HeightAt(x, z)
			b := f.HeightAt(x, z)
			if a != b {
				t.Fatalf("HeightAt(%d,%d) not deterministic: %v vs %v", x, z, a, b)
			}
		}
	}
}

// TestSineFieldBounded verifies the analytic ±5.25 amplitude bound
func TestSineFieldBounded(t *testing.T) {
	var f SineField
	for x := -200; x <= 200; x++ {
		for z := -200; z <= 200; z += 3 {
			h := f.HeightAt(x, z)
			if math.Abs(h) > constant.HeightBound {
				t.Fatalf("HeightAt(%d,%d) = %v exceeds bound %v", x, z, h, constant.HeightBound)
			}
		}
	}
}

// TestElevationAtOrigin verifies the fractional crossover: height exactly 0 → elevation 8
func TestElevationAtOrigin(t *testing.T) {
	var f SineField
	if h := f.HeightAt(0, 0); h != 0 {
		t.Fatalf("Expected height 0 at origin, got %v", h)
	}
	if e := Elevation(f, 0, 0); e != 8 {
		t.Errorf("Expected elevation 8 at origin, got %d", e)
	}
}

// TestElevationFloorQuantization verifies elevation equals floor(height+8) everywhere sampled
func TestElevationFloorQuantization(t *testing.T) {
	var f SineField
	for x := -36; x <= 36; x += 5 {
		for z := -36; z <= 36; z += 5 {
			want := int(math.Floor(f.HeightAt(x, z) + constant.BaseElevation))
			if got := Elevation(f, x, z); got != want {
				t.Errorf("Elevation(%d,%d) = %d, want %d", x, z, got, want)
			}
		}
	}
}

// TestElevationPositiveBand verifies all elevations stay positive around y=8
func TestElevationPositiveBand(t *testing.T) {
	var f SineField
	for x := -72; x <= 72; x++ {
		for z := -72; z <= 72; z += 4 {
			e := Elevation(f, x, z)
			if e < 2 || e > 13 {
				t.Errorf("Elevation(%d,%d) = %d outside expected band [2,13]", x, z, e)
			}
		}
	}
}

// TestPerlinFieldDeterministicAndBounded verifies the alternate source honors the same contract
func TestPerlinFieldDeterministicAndBounded(t *testing.T) {
	p := NewPerlinField(1337)
	for x := -40; x <= 40; x += 3 {
		for z := -40; z <= 40; z += 3 {
			a := p.HeightAt(x, z)
			if b := p.HeightAt(x, z); a != b {
				t.Fatalf("PerlinField not deterministic at (%d,%d)", x, z)
			}
			if math.Abs(a) > constant.HeightBound {
				t.Fatalf("PerlinField(%d,%d) = %v exceeds bound", x, z, a)
			}
		}
	}
}

package common

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func assertMatrix(t *testing.T, got, want []float32) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("index %d = %v, want %v (got %v)", i, got[i], want[i], got)
		}
	}
}

var identity = []float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 42
	}
	Identity(m)
	for i, v := range m {
		want := float32(0)
		if i == 0 || i == 5 || i == 10 || i == 15 {
			want = 1
		}
		if v != want {
			t.Errorf("Identity()[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestTranslation(t *testing.T) {
	tests := []struct {
		name string
		x, y float32
	}{
		{"origin", 0, 0},
		{"start position", -1, -0.75},
		{"peak of jump", 0.3, -0.25},
		{"far off-screen", 1e4, -1e4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := make([]float32, 16)
			Translation(m, tt.x, tt.y)

			want := append([]float32(nil), identity...)
			want[3] = tt.x
			want[7] = tt.y
			assertMatrix(t, m, want)
		})
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
	}{
		{"zero", 0},
		{"thirty", 30},
		{"right angle", 90},
		{"negative", -45},
		{"full turn", 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := make([]float32, 16)
			Rotation(m, tt.angle)

			rad := float64(tt.angle) * math.Pi / 180
			c := float32(math.Cos(rad))
			s := float32(math.Sin(rad))

			want := append([]float32(nil), identity...)
			want[0], want[1] = c, -s
			want[4], want[5] = s, c
			assertMatrix(t, m, want)
		})
	}
}

func TestRotationZeroIsIdentity(t *testing.T) {
	m := make([]float32, 16)
	Rotation(m, 0)
	assertMatrix(t, m, identity)
}

func TestScaling(t *testing.T) {
	m := make([]float32, 16)
	Scaling(m, 2, 0.5)

	want := append([]float32(nil), identity...)
	want[0] = 2
	want[5] = 0.5
	assertMatrix(t, m, want)
}

func TestMul4(t *testing.T) {
	t.Run("identity is neutral", func(t *testing.T) {
		tr := make([]float32, 16)
		Translation(tr, 0.5, -0.25)

		out := make([]float32, 16)
		Mul4(out, identity, tr)
		assertMatrix(t, out, tr)

		Mul4(out, tr, identity)
		assertMatrix(t, out, tr)
	})

	t.Run("translations add", func(t *testing.T) {
		a := make([]float32, 16)
		b := make([]float32, 16)
		Translation(a, 0.5, 1)
		Translation(b, -0.25, 2)

		out := make([]float32, 16)
		Mul4(out, a, b)

		want := make([]float32, 16)
		Translation(want, 0.25, 3)
		assertMatrix(t, out, want)
	})

	t.Run("translate after rotate keeps offset", func(t *testing.T) {
		tr := make([]float32, 16)
		rot := make([]float32, 16)
		Translation(tr, 0.4, -0.6)
		Rotation(rot, 90)

		out := make([]float32, 16)
		Mul4(out, tr, rot)

		// Row-major: the rotation block sits top-left, the translation in the last column.
		want := []float32{
			0, -1, 0, 0.4,
			1, 0, 0, -0.6,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}
		assertMatrix(t, out, want)
	})

	t.Run("aliased output", func(t *testing.T) {
		a := make([]float32, 16)
		Scaling(a, 2, 3)
		b := make([]float32, 16)
		Scaling(b, 4, 5)

		Mul4(a, a, b)

		want := make([]float32, 16)
		Scaling(want, 8, 15)
		assertMatrix(t, a, want)
	})
}

func TestSliceToBytes(t *testing.T) {
	if got := SliceToBytes([]float32(nil)); got != nil {
		t.Errorf("SliceToBytes(nil) = %v, want nil", got)
	}
	if got := len(SliceToBytes(make([]float32, 9))); got != 36 {
		t.Errorf("len(SliceToBytes(9 floats)) = %d, want 36", got)
	}
}

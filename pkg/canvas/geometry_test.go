package canvas

import "testing"

func TestBoxEdges(t *testing.T) {
	b := Rect(0.5, 1.8, 2.0, 0.65)
	if b.Right() != 2.5 {
		t.Errorf("Right() = %v", b.Right())
	}
	if got := b.CenterY(); got != 1.8+0.325 {
		t.Errorf("CenterY() = %v", got)
	}
	in := b.Inset(0.1, 0.05)
	if in.X != 0.6 || in.W != 1.8 {
		t.Errorf("Inset() = %+v", in)
	}
}

func TestBoxWithin(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"full page", Rect(0, 0, 13.33, 7.5), true},
		{"inside", Rect(1, 1, 2, 2), true},
		{"past right", Rect(12, 1, 2, 1), false},
		{"past bottom", Rect(1, 7, 1, 1), false},
		{"negative origin", Rect(-0.1, 0, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Within(13.33, 7.5); got != tt.want {
				t.Errorf("Within() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEMU(t *testing.T) {
	if got := InchesToEMU(13.33); got != 12188952 {
		t.Errorf("InchesToEMU(13.33) = %d", got)
	}
	if got := InchesToEMU(7.5); got != 6858000 {
		t.Errorf("InchesToEMU(7.5) = %d", got)
	}
	if got := PointsToEMU(1.5); got != 19050 {
		t.Errorf("PointsToEMU(1.5) = %d", got)
	}
}

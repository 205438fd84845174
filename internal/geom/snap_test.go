package geom

import "testing"

func TestSnap(t *testing.T) {
	type tc struct {
		rect     Rect
		scale    float64
		expected Rect
	}

	tests := map[string]tc{
		"already integral at 1x": {
			rect:     NewRect(10, 20, 30, 40),
			scale:    1,
			expected: NewRect(10, 20, 30, 40),
		},
		"origin floors at 3x": {
			rect:     NewRect(10.34, 0, 1, 1),
			scale:    3,
			expected: NewRect(31.0/3, 0, 1, 1),
		},
		"extent ceils at 3x": {
			rect:     NewRect(0, 0, 1.1, 0.2),
			scale:    3,
			expected: NewRect(0, 0, 4.0/3, 1.0/3),
		},
		"third is stable at 3x": {
			rect:     NewRect(1.0/3, 2.0/3, 1.0/3, 2.0/3),
			scale:    3,
			expected: NewRect(1.0/3, 2.0/3, 1.0/3, 2.0/3),
		},
		"half point at 2x": {
			rect:     NewRect(0, 0, 99.5, 50),
			scale:    2,
			expected: NewRect(0, 0, 99.5, 50),
		},
		"half point at 1x rounds up": {
			rect:     NewRect(0.5, 0, 99.5, 50),
			scale:    1,
			expected: NewRect(0, 0, 100, 50),
		},
		"zero scale treated as 1x": {
			rect:     NewRect(0.5, 0.5, 0.5, 0.5),
			scale:    0,
			expected: NewRect(0, 0, 1, 1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Snap(tt.rect, tt.scale)
			if got != tt.expected {
				t.Errorf("Snap(%+v, %v) = %+v, want %+v", tt.rect, tt.scale, got, tt.expected)
			}
		})
	}
}

func TestSnap_NeverShrinks(t *testing.T) {
	for _, scale := range []float64{1, 2, 3} {
		for _, w := range []float64{0.1, 0.34, 1.01, 12.345, 99.99} {
			got := Snap(NewRect(0, 0, w, w), scale)
			if got.Width < w || got.Height < w {
				t.Errorf("Snap(w=%v, scale=%v) = %+v, extent shrank", w, scale, got)
			}
		}
	}
}

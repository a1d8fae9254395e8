package reactive

import "testing"

func TestSameValue(t *testing.T) {
	m := map[string]any{"a": 1}
	s := []any{1, 2}
	obj := &Object{}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil value", nil, 0, false},
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"int vs int64", 1, int64(1), false},
		{"equal strings", "c", "c", true},
		{"same map", m, m, true},
		{"different maps", m, map[string]any{"a": 1}, false},
		{"same slice", s, s, true},
		{"resliced", s, s[:1], false},
		{"same pointer", obj, obj, true},
		{"different pointers", obj, &Object{}, false},
		{"uncomparable array", [1]any{[]int{1}}, [1]any{[]int{1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameValue(tt.a, tt.b); got != tt.want {
				t.Errorf("sameValue(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

package dom

import "testing"

func TestVisibleEnough(t *testing.T) {
	cases := []struct {
		intersecting bool
		ratio        float64
		want         bool
	}{
		{true, 0.05, false},
		{true, 0.1, true},
		{true, 1, true},
		{false, 0.5, false},
		{true, 0, false},
	}
	for _, c := range cases {
		if got := visibleEnough(c.intersecting, c.ratio, 0.1); got != c.want {
			t.Errorf("visibleEnough(%v, %v, 0.1) = %v, want %v", c.intersecting, c.ratio, got, c.want)
		}
	}
	if VisibleEnough(0.05, 0.1) || !VisibleEnough(0.2, 0.1) {
		t.Fatalf("VisibleEnough disagrees with the reveal rule")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"image"
	"testing"
)

func TestRectangleIntersect(t *testing.T) {
	tests := []struct {
		name    string
		r, s    Rectangle
		want    Rectangle
		overlap bool
	}{
		{"inside", Rect(0, 0, 10, 10), Rect(2, 2, 4, 4), Rect(2, 2, 4, 4), true},
		{"partial", Rect(0, 0, 10, 10), Rect(5, 5, 10, 10), Rect(5, 5, 5, 5), true},
		{"touching", Rect(0, 0, 10, 10), Rect(10, 0, 10, 10), Rectangle{}, false},
		{"disjoint", Rect(0, 0, 10, 10), Rect(20, 20, 1, 1), Rectangle{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Intersect(tc.s); got != tc.want {
				t.Errorf("Intersect: got %v, want %v", got, tc.want)
			}
			if got := tc.r.Overlaps(tc.s); got != tc.overlap {
				t.Errorf("Overlaps: got %v, want %v", got, tc.overlap)
			}
		})
	}
}

func TestRectangleAccessors(t *testing.T) {
	r := Rect(10, 20, 30, 40)
	if got, want := r.Size(), Sz(30, 40); got != want {
		t.Errorf("Size: got %v, want %v", got, want)
	}
	if got, want := r.Mid(), Pt(25, 40); got != want {
		t.Errorf("Mid: got %v, want %v", got, want)
	}
	if !r.Contains(Pt(10, 20)) || r.Contains(Pt(40, 20)) {
		t.Errorf("Contains: min edge must be inclusive, max edge exclusive")
	}
	if got, want := r.At(Pt(0, 0)), Rect(0, 0, 30, 40); got != want {
		t.Errorf("At: got %v, want %v", got, want)
	}
	if got, want := r.Round(), image.Rect(10, 20, 40, 60); got != want {
		t.Errorf("Round: got %v, want %v", got, want)
	}
}

func TestLerpAndDist(t *testing.T) {
	p := Pt(0, 0).Lerp(Pt(10, 20), 0.5)
	if p != Pt(5, 10) {
		t.Errorf("Point.Lerp: got %v", p)
	}
	if d := Pt(0, 0).Dist(Pt(3, 4)); d != 5 {
		t.Errorf("Point.Dist: got %v, want 5", d)
	}
	s := Sz(10, 10).Lerp(Sz(20, 30), 0.5)
	if s != Sz(15, 20) {
		t.Errorf("Size.Lerp: got %v", s)
	}
	if d := Sz(0, 0).Dist(Sz(6, 8)); d != 10 {
		t.Errorf("Size.Dist: got %v, want 10", d)
	}
}

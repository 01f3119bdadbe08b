package vmath

import (
	"errors"
	"math"
	"testing"
)

func TestCircleSixItemsTopFirst(t *testing.T) {
	pos, err := Circle(6, 100, -90, 0)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	if len(pos) != 6 {
		t.Fatalf("expected 6 positions, got %d", len(pos))
	}
	if pos[0].X != 0 || pos[0].Y != -100 {
		t.Errorf("item 0 expected at (0,-100), got (%v,%v)", pos[0].X, pos[0].Y)
	}
	// 60° clockwise from top
	if pos[1].X != 86.6 || pos[1].Y != -50 {
		t.Errorf("item 1 expected at (86.6,-50), got (%v,%v)", pos[1].X, pos[1].Y)
	}
	for i, p := range pos {
		if p.Index != i {
			t.Errorf("position %d carries index %d", i, p.Index)
		}
	}
}

func TestCircleDeterministic(t *testing.T) {
	cases := []struct {
		n                  int
		radius, start, rot float64
	}{
		{1, 60, -90, 0},
		{4, 80, -90, 45},
		{7, 113.7, 12.5, -390},
		{12, 120, 0, 720.25},
	}
	for _, c := range cases {
		a, err := Circle(c.n, c.radius, c.start, c.rot)
		if err != nil {
			t.Fatalf("Circle(%+v): %v", c, err)
		}
		b, _ := Circle(c.n, c.radius, c.start, c.rot)
		for i := range a {
			if math.Float64bits(a[i].X) != math.Float64bits(b[i].X) ||
				math.Float64bits(a[i].Y) != math.Float64bits(b[i].Y) ||
				a[i].Index != b[i].Index {
				t.Errorf("case %+v item %d differs between calls: %+v vs %+v", c, i, a[i], b[i])
			}
		}
	}
}

func TestCircleRotationOffset(t *testing.T) {
	pos, err := Circle(4, 100, -90, 90)
	if err != nil {
		t.Fatal(err)
	}
	if pos[0].X != 100 || pos[0].Y != 0 {
		t.Errorf("rotated item 0 expected at (100,0), got (%v,%v)", pos[0].X, pos[0].Y)
	}
}

func TestCircleZeroItems(t *testing.T) {
	pos, err := Circle(0, 100, -90, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos == nil || len(pos) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", pos)
	}
}

func TestCircleRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		radius float64
		start  float64
	}{
		{"negative radius", 3, -1, 0},
		{"nan radius", 3, math.NaN(), 0},
		{"inf radius", 3, math.Inf(1), 0},
		{"nan angle", 3, 10, math.NaN()},
		{"negative count", -2, 10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Circle(c.n, c.radius, c.start, 0)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestArcSpacing(t *testing.T) {
	pos, err := Arc(3, 100, 180, 90, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []Vec2{{-100, 0}, {-70.71, -70.71}, {0, -100}}
	for i, w := range want {
		if pos[i].X != w.X || pos[i].Y != w.Y {
			t.Errorf("item %d expected %+v, got (%v,%v)", i, w, pos[i].X, pos[i].Y)
		}
	}
}

func TestArcSingleItemNoDivideByZero(t *testing.T) {
	pos, err := Arc(1, 50, -90, 216, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != 1 || pos[0].X != 0 || pos[0].Y != -50 {
		t.Errorf("unexpected single-item arc: %+v", pos)
	}
}

func TestArcRejectsBadRange(t *testing.T) {
	if _, err := Arc(3, 50, 0, 400, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

package vmath

import (
	"math"
	"testing"
)

func TestNormalizeDelta(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{-340, 20},
		{540, 180},
		{725, 5},
	}
	for _, c := range cases {
		if got := NormalizeDelta(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeDelta(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAngleDeltaAcrossSeam(t *testing.T) {
	if got := AngleDelta(170, -170); math.Abs(got-20) > 1e-9 {
		t.Errorf("AngleDelta(170, -170) = %v, want 20", got)
	}
	if got := AngleDelta(-170, 170); math.Abs(got+20) > 1e-9 {
		t.Errorf("AngleDelta(-170, 170) = %v, want -20", got)
	}
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float64]float64{0: 0, 360: 0, 390: 30, -30: 330, -720: 0, 150: 150}
	for in, want := range cases {
		if got := WrapDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestVecAngleScreenAxes(t *testing.T) {
	if a := (Vec2{X: 0, Y: -1}).Angle(); math.Abs(a+90) > 1e-9 {
		t.Errorf("up should be -90, got %v", a)
	}
	if a := (Vec2{X: 1, Y: 0}).Angle(); a != 0 {
		t.Errorf("right should be 0, got %v", a)
	}
	if a := (Vec2{X: -1, Y: 0}).Angle(); math.Abs(a-180) > 1e-9 {
		t.Errorf("left should be 180, got %v", a)
	}
}

func TestRoundAndClamp(t *testing.T) {
	if got := Round(86.60254, 2); got != 86.6 {
		t.Errorf("Round = %v", got)
	}
	if got := Round(-0.001, 2); math.Signbit(got) {
		t.Errorf("Round should drop negative zero")
	}
	if got := Clamp(600, 40, 120); got != 120 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(3, 40, 120); got != 40 {
		t.Errorf("Clamp low = %v", got)
	}
}

package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2IsZero(t *testing.T) {
	if !(Vec2{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if (Vec2{X: 0, Y: -1}).IsZero() {
		t.Error("non-zero vector should not report IsZero")
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", got)
	}
}

func TestVec3Near(t *testing.T) {
	a := Vec3{1, 2, 3}
	if !a.Near(Vec3{1.000001, 2, 2.999999}, 1e-5) {
		t.Error("expected vectors to be near")
	}
	if a.Near(Vec3{1.1, 2, 3}, 1e-5) {
		t.Error("expected vectors not to be near")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{-89, -89, 89, -89},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v, want %v", got, Pi)
	}
}

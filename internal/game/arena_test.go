package game

import (
	"testing"
)

func TestArena_Origin(t *testing.T) {
	a := NewArena(10, 6)

	origin := a.Origin()
	if origin.X != 1.5 {
		t.Errorf("expected origin X=1.5, got %f", origin.X)
	}
	if origin.Y != DefaultRadius {
		t.Errorf("expected origin resting on ground at Y=%f, got %f", DefaultRadius, origin.Y)
	}
}

func TestArena_Contact(t *testing.T) {
	a := NewArena(10, 6)

	tests := []struct {
		name    string
		pos     Vec2
		vel     Vec2
		surface Surface
		normal  Vec2
		clamped Vec2
	}{
		{"open air", Vec2{5, 3}, Vec2{1, -1}, SurfaceNone, Vec2{}, Vec2{}},
		{"right wall moving in", Vec2{9.8, 2}, Vec2{3, 1}, SurfaceWall, Vec2{-1, 0}, Vec2{9.75, 2}},
		{"right wall moving out", Vec2{9.8, 2}, Vec2{-3, 1}, SurfaceNone, Vec2{}, Vec2{}},
		{"left wall moving in", Vec2{0.1, 2}, Vec2{-3, 1}, SurfaceWall, Vec2{1, 0}, Vec2{0.25, 2}},
		{"left wall moving out", Vec2{0.1, 2}, Vec2{3, 1}, SurfaceNone, Vec2{}, Vec2{}},
		{"ground falling", Vec2{5, 0.2}, Vec2{1, -2}, SurfaceGround, Vec2{0, 1}, Vec2{5, 0.25}},
		{"ground rising", Vec2{5, 0.25}, Vec2{1, 2}, SurfaceNone, Vec2{}, Vec2{}},
		{"corner prefers ground", Vec2{9.9, 0.1}, Vec2{2, -2}, SurfaceGround, Vec2{0, 1}, Vec2{9.9, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := a.Contact(tt.pos, tt.vel)
			if c.Surface != tt.surface {
				t.Fatalf("expected surface %d, got %d", tt.surface, c.Surface)
			}
			if tt.surface == SurfaceNone {
				return
			}
			if c.Normal != tt.normal {
				t.Errorf("expected normal %v, got %v", tt.normal, c.Normal)
			}
			if c.Clamped != tt.clamped {
				t.Errorf("expected clamped %v, got %v", tt.clamped, c.Clamped)
			}
		})
	}
}

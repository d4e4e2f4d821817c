package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewCheckerboardImageTexture(t *testing.T) {
	c1 := core.NewVec3(1, 1, 1)
	c2 := core.NewVec3(0, 0, 0)
	texture := NewCheckerboardImageTexture(4, 4, 2, c1, c2)

	if w, h := texture.Size(); w != 4 || h != 4 {
		t.Fatalf("Expected 4x4 texture, got %dx%d", w, h)
	}

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"top-left check", core.NewVec2(0.1, 0.9), c1},
		{"top-right check", core.NewVec2(0.9, 0.9), c2},
		{"bottom-left check", core.NewVec2(0.1, 0.1), c2},
		{"bottom-right check", core.NewVec2(0.9, 0.1), c1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := texture.Value(tt.uv, core.Vec3{}); result != tt.expected {
				t.Errorf("Value(%v) = %v, expected %v", tt.uv, result, tt.expected)
			}
		})
	}
}

func TestNewUVDebugTexture(t *testing.T) {
	texture := NewUVDebugTexture(8, 8)

	// Corners encode their own UV in red and green
	corners := []core.Vec2{
		core.NewVec2(0, 0),
		core.NewVec2(1, 0),
		core.NewVec2(0, 1),
		core.NewVec2(1, 1),
	}
	for _, uv := range corners {
		result := texture.Value(uv, core.Vec3{})
		expected := core.NewVec3(uv.X, uv.Y, 0)
		if result != expected {
			t.Errorf("Value(%v) = %v, expected %v", uv, result, expected)
		}
	}
}

func TestNewGradientTexture(t *testing.T) {
	top := core.NewVec3(1, 0, 0)
	bottom := core.NewVec3(0, 0, 1)
	texture := NewGradientTexture(4, 5, top, bottom)

	if result := texture.Value(core.NewVec2(0.5, 1), core.Vec3{}); result != top {
		t.Errorf("Expected top color %v, got %v", top, result)
	}
	if result := texture.Value(core.NewVec2(0.5, 0), core.Vec3{}); result != bottom {
		t.Errorf("Expected bottom color %v, got %v", bottom, result)
	}

	// Middle row is an even blend, quantized to 8 bits
	mid := texture.Value(core.NewVec2(0.5, 0.5), core.Vec3{})
	if mid.X < 0.49 || mid.X > 0.51 || mid.Z < 0.49 || mid.Z > 0.51 {
		t.Errorf("Expected mid blend near 0.5, got %v", mid)
	}
}

package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPerlin_ZeroAtLatticePoints(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(1)))

	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 2, 3),
		core.NewVec3(-4, 7, -1),
		core.NewVec3(300, -300, 512),
	}
	for _, p := range points {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("Noise(%v) = %f, expected 0", p, n)
		}
	}
}

func TestPerlin_Deterministic(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(99)))
	b := NewPerlin(rand.New(rand.NewSource(99)))
	c := NewPerlin(rand.New(rand.NewSource(100)))

	random := rand.New(rand.NewSource(5))
	differs := false
	for i := 0; i < 100; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		if a.Noise(p) != b.Noise(p) {
			t.Fatalf("Equal seeds produced different noise at %v", p)
		}
		if a.Noise(p) != c.Noise(p) {
			differs = true
		}
	}
	if !differs {
		t.Error("Expected different seeds to produce different fields")
	}
}

func TestPerlin_Range(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(3)))
	random := rand.New(rand.NewSource(4))

	for i := 0; i < 10000; i++ {
		p := core.NewVec3(random.Float64()*50-25, random.Float64()*50-25, random.Float64()*50-25)
		if n := perlin.Noise(p); n < -1 || n > 1 {
			t.Fatalf("Noise(%v) = %f, outside [-1, 1]", p, n)
		}
		if turb := perlin.Turbulence(p, 7); turb < 0 {
			t.Fatalf("Turbulence(%v) = %f, expected non-negative", p, turb)
		}
	}
}

func TestPerlin_Continuous(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(8)))
	p := core.NewVec3(1.37, -2.11, 0.58)
	delta := core.NewVec3(1e-7, 1e-7, 1e-7)

	if diff := math.Abs(perlin.Noise(p) - perlin.Noise(p.Add(delta))); diff > 1e-5 {
		t.Errorf("Expected nearby points to have nearby noise, got difference %g", diff)
	}
}

func TestNoiseTexture_Value(t *testing.T) {
	texture := NewNoiseTexture(4.0, rand.New(rand.NewSource(11)))

	// Scaled integer lattice points map to noise 0, i.e. mid gray
	gray := texture.Value(core.Vec2{}, core.NewVec3(0.25, 0.5, 0.75))
	if math.Abs(gray.X-0.5) > 1e-12 || gray.X != gray.Y || gray.Y != gray.Z {
		t.Errorf("Expected mid gray at a lattice point, got %v", gray)
	}

	random := rand.New(rand.NewSource(12))
	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*10, random.Float64()*10, random.Float64()*10)
		v := texture.Value(core.Vec2{}, p)
		if v.X < 0 || v.X > 1 || v.X != v.Y || v.Y != v.Z {
			t.Fatalf("Value(%v) = %v, expected gray in [0, 1]", p, v)
		}
	}
}

func TestTurbulenceTexture_Value(t *testing.T) {
	texture := NewTurbulenceTexture(4.0, 7, rand.New(rand.NewSource(13)))

	random := rand.New(rand.NewSource(14))
	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*10, random.Float64()*10, random.Float64()*10)
		v := texture.Value(core.Vec2{}, p)
		if v.X < 0 || v.X > 1 || v.X != v.Y || v.Y != v.Z {
			t.Fatalf("Value(%v) = %v, expected gray in [0, 1]", p, v)
		}
	}
}

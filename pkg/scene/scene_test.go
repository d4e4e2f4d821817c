package scene

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.GetPrimitiveCount() != 5 {
		t.Fatalf("Expected 5 spheres, got %d", s.GetPrimitiveCount())
	}

	negative := 0
	for _, shape := range s.World.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			t.Fatalf("Expected only spheres, got %T", shape)
		}
		if sphere.Radius < 0 {
			negative++
		}
	}
	if negative != 1 {
		t.Errorf("Expected one negative-radius bubble sphere, got %d", negative)
	}

	if s.SamplingConfig.Width != 200 || s.SamplingConfig.Height != 100 {
		t.Errorf("Expected 200x100, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
	if s.CameraConfig.AspectRatio != 2 {
		t.Errorf("Expected aspect ratio 2, got %f", s.CameraConfig.AspectRatio)
	}
}

func TestScene_CenterRayHitsBlueSphere(t *testing.T) {
	s := NewDefaultScene()
	ray := s.GetCamera().GetRay(0.5, 0.5)

	hit, ok := s.GetWorld().Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected the center ray to hit the scene")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected hit at t=0.5, got %f", hit.T)
	}
	if _, ok := hit.Material.(*material.Lambertian); !ok {
		t.Errorf("Expected diffuse center sphere, got %T", hit.Material)
	}
}

func TestScene_SetResolution(t *testing.T) {
	s := NewDefaultScene()
	before := s.GetCamera()

	s.SetResolution(300, 300)
	if s.SamplingConfig.Width != 300 || s.SamplingConfig.Height != 300 {
		t.Errorf("Expected 300x300, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
	if s.CameraConfig.AspectRatio != 1 {
		t.Errorf("Expected aspect ratio 1, got %f", s.CameraConfig.AspectRatio)
	}
	if s.GetCamera() == before {
		t.Error("Expected camera to be rebuilt")
	}

	// Square viewport: the corner ray leans equally in x and y
	dir := s.GetCamera().GetRay(1, 1).Direction
	if math.Abs(dir.X-dir.Y) > 1e-12 {
		t.Errorf("Expected symmetric corner ray, got %v", dir)
	}
}

func TestEarthScene_Textures(t *testing.T) {
	textureOf := func(s *Scene) core.Texture {
		sphere := s.World.Shapes[0].(*geometry.Sphere)
		return sphere.Material.(*material.Lambertian).Albedo
	}

	debug := NewEarthScene(Options{})
	if tex := textureOf(debug).(*material.ImageTexture); !tex.HasData() {
		t.Error("Expected UV debug texture when no path is given")
	}

	missing := NewEarthScene(Options{TexturePath: filepath.Join(t.TempDir(), "earthmap.jpg")})
	color := textureOf(missing).Value(core.NewVec2(0.5, 0.5), core.Vec3{})
	if color != material.MissingTextureColor {
		t.Errorf("Expected red debug color for a missing file, got %v", color)
	}
}

func TestUVCheckerScene_Textures(t *testing.T) {
	s := NewUVCheckerScene()
	if s.GetPrimitiveCount() != 2 {
		t.Fatalf("Expected 2 spheres, got %d", s.GetPrimitiveCount())
	}

	light := core.NewVec3(0.9, 0.9, 0.9)
	dark := core.NewVec3(0.2, 0.3, 0.1)
	near := func(a, b core.Vec3) bool { return a.Subtract(b).Length() < 0.01 }

	albedo := func(i int) core.Texture {
		return s.World.Shapes[i].(*geometry.Sphere).Material.(*material.Lambertian).Albedo
	}

	// Ground gradient runs from dark at v=0 to light at v=1
	ground := albedo(0)
	if c := ground.Value(core.NewVec2(0.5, 1), core.Vec3{}); !near(c, light) {
		t.Errorf("Expected light ground at the top pole, got %v", c)
	}
	if c := ground.Value(core.NewVec2(0.5, 0), core.Vec3{}); !near(c, dark) {
		t.Errorf("Expected dark ground at the bottom pole, got %v", c)
	}

	// Adjacent checks along u alternate
	checker := albedo(1)
	a := checker.Value(core.NewVec2(0.01, 0.99), core.Vec3{})
	b := checker.Value(core.NewVec2(0.01+16.0/256, 0.99), core.Vec3{})
	if near(a, b) {
		t.Errorf("Expected adjacent checks to differ, got %v and %v", a, b)
	}
	if !near(a, light) && !near(a, dark) {
		t.Errorf("Expected a checker color, got %v", a)
	}
}

func TestScene_Extent(t *testing.T) {
	s := NewCheckerScene()
	center, size, ok := s.Extent()
	if !ok {
		t.Fatal("Expected bounded world")
	}
	if center != (core.Vec3{}) {
		t.Errorf("Expected center at the origin, got %v", center)
	}
	if size != core.NewVec3(20, 40, 20) {
		t.Errorf("Expected size (20,40,20), got %v", size)
	}

	empty := newScene(renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig())
	if _, _, ok := empty.Extent(); ok {
		t.Error("Expected empty world to report no extent")
	}
}

func TestBouncingScene(t *testing.T) {
	s := NewBouncingScene(Options{Seed: 3})

	if s.CameraConfig.Time1 <= s.CameraConfig.Time0 {
		t.Errorf("Expected an open shutter interval, got [%f, %f]", s.CameraConfig.Time0, s.CameraConfig.Time1)
	}

	moving := 0
	for _, shape := range s.World.Shapes {
		if ms, ok := shape.(*geometry.MovingSphere); ok {
			moving++
			if ms.Center1.Y < ms.Center0.Y {
				t.Errorf("Expected spheres to move upward, got %v -> %v", ms.Center0, ms.Center1)
			}
		}
	}
	if moving == 0 {
		t.Error("Expected moving spheres")
	}

	// Same seed, same layout
	again := NewBouncingScene(Options{Seed: 3})
	if again.GetPrimitiveCount() != s.GetPrimitiveCount() {
		t.Fatalf("Expected identical layouts for equal seeds")
	}
	if _, ok := s.World.BoundingBox(0, 1); !ok {
		t.Error("Expected bounded world")
	}
}

func TestScene_Stats(t *testing.T) {
	stats := NewBouncingScene(Options{Seed: 3}).Stats()

	for _, want := range []string{"Sphere", "Moving sphere", "Total"} {
		if !strings.Contains(stats, want) {
			t.Errorf("Expected stats to contain %q:\n%s", want, stats)
		}
	}
}

func TestScene_Render(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := NewScene(info.ID, Options{Seed: 5})
			if err != nil {
				t.Fatalf("NewScene failed: %v", err)
			}
			s.SetResolution(8, 4)
			config := s.SamplingConfig
			config.SamplesPerPixel = 1
			config.MaxDepth = 5

			raytracer, err := renderer.NewRaytracer(s, s.Integrator(), config, nil)
			if err != nil {
				t.Fatalf("NewRaytracer failed: %v", err)
			}
			img, stats := raytracer.RenderPass()
			if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
				t.Errorf("Expected 8x4 image, got %v", img.Bounds())
			}
			if stats.TotalRays < stats.TotalSamples {
				t.Errorf("Expected at least one ray per sample, got %d rays for %d samples", stats.TotalRays, stats.TotalSamples)
			}
		})
	}
}

package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed for the render's random source
}

// DefaultSamplingConfig returns the settings of the classic 200x100 sphere render
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Validate reports whether the configuration can produce an image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 || c.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d samples, depth %d", ErrInvalidSampling, c.SamplesPerPixel, c.MaxDepth)
	}
	return nil
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Scene is what the raytracer needs from a scene
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Shape
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	integrator integrator.Integrator
	config     SamplingConfig
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger disables progress output.
func NewRaytracer(scene Scene, integ integrator.Integrator, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if scene.GetCamera() == nil {
		return nil, ErrNoCamera
	}
	if scene.GetWorld() == nil {
		return nil, ErrNoWorld
	}

	return &Raytracer{
		scene:      scene,
		integrator: integ,
		config:     config,
		sampler:    core.NewRandomSampler(rand.New(rand.NewSource(config.Seed))),
		logger:     logger,
	}, nil
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// rayCounter counts every world query made during a render
type rayCounter struct {
	world core.Shape
	rays  int
}

func (c *rayCounter) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	c.rays++
	return c.world.Hit(ray, tMin, tMax)
}

func (c *rayCounter) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return c.world.BoundingBox(time0, time1)
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders the whole image with multi-sampling.
// Rows are traced from the top of the viewport down; each pixel averages jittered samples.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	camera := rt.scene.GetCamera()
	world := &rayCounter{world: rt.scene.GetWorld()}

	startTime := time.Now()
	progressStep := max(1, height/10)

	for j := height - 1; j >= 0; j-- {
		row := height - 1 - j
		if rt.logger != nil && row%progressStep == 0 {
			rt.logger.Printf("rendering row %d/%d\n", row+1, height)
		}

		for i := 0; i < width; i++ {
			// Accumulate color from multiple samples
			colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Convert pixel coordinates to normalized coordinates with jitter
				jitter := rt.sampler.Get2D()
				s := (float64(i) + jitter.X) / float64(width)
				t := (float64(j) + jitter.Y) / float64(height)

				ray := camera.GetRayAtTime(s, t, rt.sampler)
				colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, world, rt.sampler, rt.config.MaxDepth))
			}

			colorVec := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
			img.SetRGBA(i, row, vec3ToColor(colorVec))
		}
	}

	totalPixels := width * height
	stats := RenderStats{
		Width:            width,
		Height:           height,
		TotalPixels:      totalPixels,
		SamplesPerPixel:  rt.config.SamplesPerPixel,
		TotalSamples:     totalPixels * rt.config.SamplesPerPixel,
		TotalRays:        world.rays,
		MaxDepth:         rt.config.MaxDepth,
		RenderTime:       time.Since(startTime),
		AverageLuminance: CalculateAverageLuminance(img),
	}

	return img, stats
}

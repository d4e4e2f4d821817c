package scene

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.HittableList // Objects in the scene
	SamplingConfig renderer.SamplingConfig
	SkyColor       core.Vec3 // Zenith color of the background gradient
}

// Options carries per-render inputs that scene builders may use
type Options struct {
	Seed        int64  // Seed for procedural placement and noise
	TexturePath string // Image file for textured scenes
}

// newScene assembles a scene, fitting the camera aspect ratio to the sampling resolution
func newScene(cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig, shapes ...core.Shape) *Scene {
	s := &Scene{
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(shapes...),
		SamplingConfig: samplingConfig,
		SkyColor:       integrator.DefaultSkyColor,
	}
	s.SetResolution(samplingConfig.Width, samplingConfig.Height)
	return s
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the shape every camera ray is traced against
func (s *Scene) GetWorld() core.Shape {
	return s.World
}

// Integrator returns a path tracer using the scene's sky
func (s *Scene) Integrator() *integrator.PathTracingIntegrator {
	return integrator.NewPathTracingIntegratorWithSky(s.SkyColor)
}

// SetResolution changes the output size and rebuilds the camera to match its aspect ratio.
// Non-positive sizes are stored as-is and leave the camera untouched; validation happens at render time.
func (s *Scene) SetResolution(width, height int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = height
	if width > 0 && height > 0 {
		s.CameraConfig.AspectRatio = float64(width) / float64(height)
	}
	s.Camera = renderer.NewCamera(s.CameraConfig)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// Extent returns the center and size of the world bounds over the camera shutter interval
func (s *Scene) Extent() (center, size core.Vec3, ok bool) {
	box, ok := s.World.BoundingBox(s.CameraConfig.Time0, s.CameraConfig.Time1)
	if !ok {
		return core.Vec3{}, core.Vec3{}, false
	}
	return box.Center(), box.Size(), true
}

// Stats builds a tabular summary of the scene contents
func (s *Scene) Stats() string {
	counts := make(map[string]int)
	var order []string
	for _, shape := range s.World.Shapes {
		kind := shapeKind(shape)
		if counts[kind] == 0 {
			order = append(order, kind)
		}
		counts[kind]++
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Shape", "Count"})
	for _, kind := range order {
		table.Append([]string{kind, fmt.Sprintf("%d", counts[kind])})
	}
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", s.GetPrimitiveCount())})
	table.Render()

	return buf.String()
}

func shapeKind(shape core.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "Sphere"
	case *geometry.MovingSphere:
		return "Moving sphere"
	case *geometry.HittableList:
		return "Group"
	default:
		return fmt.Sprintf("%T", shape)
	}
}

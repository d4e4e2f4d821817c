package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width            int           // Image width in pixels
	Height           int           // Image height in pixels
	TotalPixels      int           // Total number of pixels rendered
	SamplesPerPixel  int           // Camera rays per pixel
	TotalSamples     int           // Total number of camera rays
	TotalRays        int           // Camera and scattered rays tested against the world
	MaxDepth         int           // Maximum ray bounce depth
	RenderTime       time.Duration // Wall time of the render pass
	AverageLuminance float64       // Mean luminance of the output image
}

// RaysPerSample returns the average path length in rays
func (s RenderStats) RaysPerSample() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.TotalRays) / float64(s.TotalSamples)
}

// RaysPerSecond returns the tracing throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalRays) / s.RenderTime.Seconds()
}

// FormatStats renders the statistics as a text table
func FormatStats(stats RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", stats.Width, stats.Height)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", stats.TotalPixels)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%d", stats.SamplesPerPixel)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)})
	table.Append([]string{"Camera rays", fmt.Sprintf("%d", stats.TotalSamples)})
	table.Append([]string{"Total rays", fmt.Sprintf("%d", stats.TotalRays)})
	table.Append([]string{"Rays per sample", fmt.Sprintf("%.2f", stats.RaysPerSample())})
	table.Append([]string{"Rays per second", fmt.Sprintf("%.0f", stats.RaysPerSecond())})
	table.Append([]string{"Average luminance", fmt.Sprintf("%.4f", stats.AverageLuminance)})
	table.SetFooter([]string{"Render time", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}

// CalculateAverageLuminance returns the mean luminance of the image.
// Pixels are read as-is, without undoing gamma.
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255).Luminance()
		}
	}
	return total / float64(pixels)
}

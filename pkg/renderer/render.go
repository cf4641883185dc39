package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
	"github.com/prenoma/go-whitted-raytracer/pkg/scene"
)

// Canvas is the display surface rendering streams pixels to. Coordinates
// are image-space with the origin at the bottom left; implementations are
// responsible for flipping to their device convention.
type Canvas interface {
	SetPixel(x, y int, color core.Vec3)
	Present()
}

// RenderStats tracks rendering progress counters
type RenderStats struct {
	RowsRendered int
	PrimaryRays  int
}

// Stats returns the counters accumulated so far
func (rt *Raytracer) Stats() RenderStats {
	return rt.stats
}

// RenderChunk renders scan lines starting at startRow, streaming pixels to
// the canvas, until the image is finished or the configured time budget is
// exceeded. It returns the row to resume from and whether the image is
// complete, so a caller can interleave rendering with a responsive display
// loop. Pass startRow 0 to start (or restart) a render.
func (rt *Raytracer) RenderChunk(canvas Canvas, startRow int) (int, bool) {
	startTime := time.Now()

	rowsPerTenth := rt.scene.Height / 10

	for y := startRow; y < rt.scene.Height; y++ {
		for x := 0; x < rt.scene.Width; x++ {
			canvas.SetPixel(x, y, rt.pixelColor(x, y))
		}
		rt.stats.RowsRendered++

		if rowsPerTenth > 0 && y%rowsPerTenth == 0 {
			rt.logger.Printf("%.0f%%\n", float64(y)/float64(rt.scene.Height)*100.0)
		}

		canvas.Present()

		if y+1 < rt.scene.Height && time.Since(startTime) > rt.config.TimeBudget {
			return y + 1, false
		}
	}

	rt.logger.Printf("done\n")
	return rt.scene.Height, true
}

// pixelColor averages the recursive cast results of all primary rays
// sampled for the pixel
func (rt *Raytracer) pixelColor(x, y int) core.Vec3 {
	rays := rt.pixelRays(x, y)
	rt.stats.PrimaryRays += len(rays)

	var color core.Vec3
	for _, ray := range rays {
		color = color.Add(rt.castRay(ray, rt.config.MaxDepth, airRefractiveIndex))
	}

	return color.Multiply(1.0 / float64(len(rays)))
}

func lerp(a, b, t float64) float64 {
	return a*(1.0-t) + b*t
}

// pixelRays generates the primary rays for a pixel according to the
// scene's anti-aliasing mode
func (rt *Raytracer) pixelRays(x, y int) []core.Ray {
	dx := 2.0 / float64(rt.scene.Width)
	dy := 2.0 / float64(rt.scene.Height)

	fx, fy := float64(x), float64(y)
	minX := -1.0 + (fx-0.5)*dx
	minY := -1.0 + (fy-0.5)*dy
	maxX := -1.0 + (fx+0.5)*dx
	maxY := -1.0 + (fy+0.5)*dy

	aaType := rt.scene.AAType
	if rt.scene.AARate == 1 {
		aaType = scene.AANone
	}

	var rays []core.Ray

	switch aaType {
	case scene.AASuperSample:
		rate := rt.scene.AARate
		for i := 0; i < rate; i++ {
			for j := 0; j < rate; j++ {
				u := lerp(minX, maxX, float64(i)/float64(rate))
				v := lerp(minY, maxY, float64(j)/float64(rate))
				rays = append(rays, rt.camera.RayThrough(u, v))
			}
		}
	case scene.AAMonteCarlo:
		rate := rt.scene.AARate
		for i := 0; i < rate*rate; i++ {
			u := lerp(minX, maxX, rt.random.Float64())
			v := lerp(minY, maxY, rt.random.Float64())
			rays = append(rays, rt.camera.RayThrough(u, v))
		}
	default:
		rays = append(rays, rt.camera.RayThrough(-1.0+fx*dx, -1.0+fy*dy))
	}

	return rays
}

// ImageCanvas is a Canvas backed by an in-memory RGBA image. It performs
// the bottom-left to top-left flip and the fractional-intensity to 8-bit
// conversion.
type ImageCanvas struct {
	img    *image.RGBA
	height int
}

// NewImageCanvas creates an image canvas of the given dimensions
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		height: height,
	}
}

// SetPixel writes a color at image-space coordinates
func (c *ImageCanvas) SetPixel(x, y int, colorVec core.Vec3) {
	c.img.SetRGBA(x, c.height-1-y, vec3ToColor(colorVec))
}

// Present is a no-op: the backing image is always current
func (c *ImageCanvas) Present() {}

// Image returns the backing image
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// vec3ToColor converts fractional color intensities to RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	clamped := colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * clamped.X),
		G: uint8(255 * clamped.Y),
		B: uint8(255 * clamped.Z),
		A: 255,
	}
}

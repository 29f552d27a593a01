package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      Scene
	camera     *Camera
	integrator integrator.Integrator
	config     core.SamplingConfig
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene Scene, integratorInst integrator.Integrator, config core.SamplingConfig) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		camera:     scene.GetCamera(),
		integrator: integratorInst,
		config:     config,
	}
}

// RenderTileBounds renders every pixel within bounds into fb. Each tile has
// non-overlapping bounds, so concurrent calls on disjoint tiles are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *Framebuffer, sampler core.Sampler, progress *Progress) RenderStats {
	width := float64(tr.config.Width)
	height := float64(tr.config.Height)

	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy(), Tiles: 1}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		// Image rows run top to bottom, viewport t runs bottom to top
		row := float64(tr.config.Height - 1 - j)

		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			for sample := 0; sample < tr.config.SamplesPerPixel; sample++ {
				jitter := sampler.Get2D()
				s := (float64(i) + jitter.X) / width
				t := (row + jitter.Y) / height

				ray := tr.camera.GetRay(s, t, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler))
			}

			fb.Set(i, j, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
			if progress != nil {
				progress.Add(1)
			}
		}
	}

	return stats
}

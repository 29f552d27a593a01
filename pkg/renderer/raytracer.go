package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Scene is everything the renderer needs from a scene
type Scene interface {
	integrator.Scene
	GetCamera() *Camera
}

// RenderOptions control how a render is scheduled
type RenderOptions struct {
	NumWorkers       int           // Number of parallel workers (0 = use CPU count)
	TileSize         int           // Edge length of square tiles in pixels
	Seed             int64         // Base seed for per-tile random streams (0 = time based)
	ProgressInterval time.Duration // How often progress is logged (0 = never)
	Logger           core.Logger   // Logger for rendering output (nil = discard)
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		NumWorkers:       0,
		TileSize:         32,
		ProgressInterval: 2 * time.Second,
		Logger:           NewDefaultLogger(),
	}
}

// Raytracer renders a scene into a framebuffer using a pool of workers
type Raytracer struct {
	scene      Scene
	config     core.SamplingConfig
	options    RenderOptions
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the path tracing integrator
func NewRaytracer(scene Scene, config core.SamplingConfig, options RenderOptions) (*Raytracer, error) {
	if err := validateSamplingConfig(config); err != nil {
		return nil, err
	}
	if scene.GetCamera() == nil {
		return nil, errors.New("scene has no camera")
	}
	if scene.GetWorld() == nil {
		return nil, fmt.Errorf("scene has no world: %w", core.ErrEmptyScene)
	}

	logger := options.Logger
	if logger == nil {
		logger = discardLogger{}
	}

	return &Raytracer{
		scene:      scene,
		config:     config,
		options:    options,
		integrator: integrator.NewPathTracingIntegrator(config),
		logger:     logger,
	}, nil
}

func validateSamplingConfig(config core.SamplingConfig) error {
	var problems []error
	if config.Width <= 0 || config.Height <= 0 {
		problems = append(problems, fmt.Errorf("image size must be positive, got %dx%d", config.Width, config.Height))
	}
	if config.SamplesPerPixel <= 0 {
		problems = append(problems, fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel))
	}
	if config.MaxDepth < 0 {
		problems = append(problems, fmt.Errorf("max depth must not be negative, got %d", config.MaxDepth))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid sampling config: %w", errors.Join(problems...))
	}
	return nil
}

// Render renders the full image. Tiles are processed in parallel, each with
// its own random stream derived from the base seed and the tile ID, so a fixed
// seed reproduces the same image for any worker count.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.options.TileSize)

	progress := NewProgress(rt.config.Width * rt.config.Height)
	progress.Start(rt.options.ProgressInterval, rt.logger)
	defer progress.Stop()

	tileRenderer := NewTileRenderer(rt.scene, rt.integrator, rt.config)
	pool := NewWorkerPool(tileRenderer, progress, len(tiles), rt.options.NumWorkers)

	rt.logger.Printf("Rendering %dx%d, %d spp, depth %d, %d tiles on %d workers\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth,
		len(tiles), pool.GetNumWorkers())

	baseSeed := rt.options.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:        tile,
			Seed:        baseSeed + int64(tile.ID),
			Framebuffer: fb,
		})
	}
	pool.Stop()

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = fmt.Errorf("tile %d: %w", result.TileID, result.Error)
		}
		stats.merge(result.Stats)
	}
	stats.Elapsed = time.Since(start)

	if renderErr != nil {
		return nil, stats, renderErr
	}

	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Elapsed.Round(time.Millisecond), stats.TotalSamples)
	return fb, stats, nil
}

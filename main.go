package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/export"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the selected scene, and writes the outputs
func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(stdout)

	var cli config.Config
	configPath := flags.String("config", "", "JSON file with render settings (flags take precedence)")
	list := flags.Bool("list", false, "List the built-in scenes and exit")
	flags.StringVar(&cli.Scene, "scene", "", "Scene to render (see -list)")
	flags.IntVar(&cli.Width, "width", 0, "Image width in pixels (height follows the scene aspect ratio)")
	flags.IntVar(&cli.SamplesPerPixel, "spp", 0, "Samples per pixel")
	flags.IntVar(&cli.MaxDepth, "depth", 0, "Maximum ray bounces")
	flags.IntVar(&cli.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flags.Int64Var(&cli.Seed, "seed", 0, "Base random seed (0 = time based)")
	flags.IntVar(&cli.Supersample, "supersample", 0, "Render at N times the size and downsample")
	flags.StringVar(&cli.Output, "out", "", "Output image (.png or .webp), default output/<scene>/render_<timestamp>.png")
	flags.StringVar(&cli.Archive, "archive", "", "Also write the unquantized framebuffer to this file")
	flags.StringVar(&cli.Codec, "codec", "", "Archive compression: zstd or snappy")
	flags.StringVar(&cli.Texture, "texture", "", "Image for textured scenes")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, info := range scene.List() {
			fmt.Fprintf(stdout, "  %-16s %s\n", info.ID, info.Description)
		}
		return nil
	}

	var file config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		file = loaded
	}
	cfg := config.Resolve(file, cli)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return render(ctx, cfg, stdout)
}

func render(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	codec, err := export.ParseCodec(cfg.Codec)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Building scene %q...\n", cfg.Scene)
	s, err := scene.Create(cfg.Scene, scene.Options{
		Width:       cfg.Width,
		Seed:        cfg.Seed,
		TexturePath: cfg.Texture,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Scene contains %d primitives\n", s.GetPrimitiveCount())
	if cfg.Supersample > 1 {
		s.SetWidth(s.SamplingConfig.Width * cfg.Supersample)
	}

	sampling := s.SamplingConfig
	if cfg.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = cfg.SamplesPerPixel
	}
	if cfg.MaxDepth > 0 {
		sampling.MaxDepth = cfg.MaxDepth
	}

	options := renderer.DefaultRenderOptions()
	options.NumWorkers = cfg.Workers
	options.TileSize = cfg.TileSize
	options.Seed = cfg.Seed
	options.Logger = renderer.NewWriterLogger(stdout)

	raytracer, err := renderer.NewRaytracer(s, sampling, options)
	if err != nil {
		return err
	}
	fb, _, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	output := cfg.Output
	if output == "" {
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join("output", cfg.Scene, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := export.WriteImage(output, export.Downsample(fb.Image(), cfg.Supersample)); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Render saved as %s\n", output)

	if cfg.Archive != "" {
		if err := writeArchive(cfg.Archive, fb, codec); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Framebuffer archived to %s (%s)\n", cfg.Archive, codec)
	}
	return nil
}

func writeArchive(path string, fb *renderer.Framebuffer, codec export.Codec) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	if err := export.WriteArchive(f, fb, codec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

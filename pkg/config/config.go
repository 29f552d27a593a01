// Package config loads render settings from a JSON file and merges them with command-line flags.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/export"
)

// Config holds every user-adjustable render setting. Zero values mean "not set".
type Config struct {
	Scene           string `json:"scene"`
	Width           int    `json:"width"`
	SamplesPerPixel int    `json:"samplesPerPixel"`
	MaxDepth        int    `json:"maxDepth"`
	Workers         int    `json:"workers"`
	TileSize        int    `json:"tileSize"`
	Seed            int64  `json:"seed"`
	Supersample     int    `json:"supersample"`
	Output          string `json:"output"`
	Archive         string `json:"archive"`
	Codec           string `json:"codec"`
	Texture         string `json:"texture"`
}

// Default returns the settings used when neither a file nor a flag sets a value
func Default() Config {
	return Config{
		Scene:       "default",
		TileSize:    32,
		Supersample: 1,
		Codec:       "zstd",
	}
}

// Load reads a JSON config file. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve layers the given configs in order of increasing priority over Default().
// Each non-zero field replaces the value beneath it.
func Resolve(layers ...Config) Config {
	cfg := Default()
	for _, l := range layers {
		cfg = cfg.merge(l)
	}
	return cfg
}

func (c Config) merge(o Config) Config {
	if o.Scene != "" {
		c.Scene = o.Scene
	}
	if o.Width != 0 {
		c.Width = o.Width
	}
	if o.SamplesPerPixel != 0 {
		c.SamplesPerPixel = o.SamplesPerPixel
	}
	if o.MaxDepth != 0 {
		c.MaxDepth = o.MaxDepth
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.TileSize != 0 {
		c.TileSize = o.TileSize
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Supersample != 0 {
		c.Supersample = o.Supersample
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Archive != "" {
		c.Archive = o.Archive
	}
	if o.Codec != "" {
		c.Codec = o.Codec
	}
	if o.Texture != "" {
		c.Texture = o.Texture
	}
	return c
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var problems []error
	if c.Scene == "" {
		problems = append(problems, errors.New("scene must be set"))
	}
	if c.Width < 0 {
		problems = append(problems, fmt.Errorf("width must not be negative, got %d", c.Width))
	}
	if c.SamplesPerPixel < 0 {
		problems = append(problems, fmt.Errorf("samplesPerPixel must not be negative, got %d", c.SamplesPerPixel))
	}
	if c.MaxDepth < 0 {
		problems = append(problems, fmt.Errorf("maxDepth must not be negative, got %d", c.MaxDepth))
	}
	if c.Workers < 0 {
		problems = append(problems, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.TileSize <= 0 {
		problems = append(problems, fmt.Errorf("tileSize must be positive, got %d", c.TileSize))
	}
	if c.Supersample < 1 {
		problems = append(problems, fmt.Errorf("supersample must be at least 1, got %d", c.Supersample))
	}
	if _, err := export.ParseCodec(c.Codec); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Options are the caller-controlled inputs to scene construction
type Options struct {
	Width       int    // Image width, 0 keeps the scene default
	Seed        int64  // Seed for randomized object placement, 0 uses the scene default
	TexturePath string // Image used by textured scenes, "" uses the scene default
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type builder struct {
	info  SceneInfo
	build func(opts Options) (*Scene, error)
}

var builtins = map[string]builder{}

func register(id, description string, build func(opts Options) (*Scene, error)) {
	builtins[id] = builder{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
		},
		build: build,
	}
}

func init() {
	register("default", "Three spheres (diffuse, glass, metal) on a large ground sphere", NewDefaultScene)
	register("random-spheres", "Field of small random spheres with three large feature spheres", NewRandomSpheresScene)
	register("two-spheres", "Two checker-textured spheres stacked vertically", NewTwoSpheresScene)
	register("earth", "Globe wrapped in an image texture", NewEarthScene)
	register("simple-light", "Sphere lit by a rectangular and a spherical light", NewSimpleLightScene)
	register("cornell", "Cornell box with two rotated boxes and a ceiling light", NewCornellScene)
}

// List returns all built-in scenes sorted by ID
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene, applies opts, and preprocesses it for rendering
func Create(name string, opts Options) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}

	s, err := b.build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	if opts.Width > 0 {
		s.SetWidth(opts.Width)
	}
	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}

// titleCase converts an identifier to title case
// e.g., "random-spheres" -> "Random Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

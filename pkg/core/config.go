package core

// SamplingConfig contains rendering parameters
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Jittered samples averaged per pixel
	MaxDepth        int // Maximum number of scattering events per path
}

// DefaultSamplingConfig returns the settings used when a scene does not override them
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

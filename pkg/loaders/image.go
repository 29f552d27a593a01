package loaders

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/df07/go-pathtracer/pkg/material"
)

// ImageData contains loaded image data as an 8-bit RGB raster
type ImageData struct {
	Width  int
	Height int
	Format string
	Pix    []uint8 // Row-major RGB, top row first
}

// decoder recognizes a format by its header. The tga package registers itself
// with an empty magic string, which matches any input, so formats are sniffed
// here rather than through image.Decode.
type decoder struct {
	name   string
	match  func(header []byte) bool
	decode func(io.Reader) (image.Image, error)
}

func prefix(magic ...string) func([]byte) bool {
	return func(header []byte) bool {
		for _, m := range magic {
			if bytes.HasPrefix(header, []byte(m)) {
				return true
			}
		}
		return false
	}
}

func isWebP(header []byte) bool {
	return len(header) >= 12 && string(header[0:4]) == "RIFF" && string(header[8:12]) == "WEBP"
}

var decoders = []decoder{
	{"png", prefix("\x89PNG\r\n\x1a\n"), png.Decode},
	{"jpeg", prefix("\xff\xd8"), jpeg.Decode},
	{"gif", prefix("GIF87a", "GIF89a"), gif.Decode},
	{"bmp", prefix("BM"), bmp.Decode},
	{"tiff", prefix("II*\x00", "MM\x00*"), tiff.Decode},
	{"webp", isWebP, webp.Decode},
}

const headerLen = 12

// LoadImage loads an image file and converts it to an RGB raster.
// TGA has no magic number and is recognized by the .tga extension;
// every other format is detected from the file header.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	var data *ImageData
	if strings.EqualFold(filepath.Ext(filename), ".tga") {
		data, err = DecodeTGA(file)
	} else {
		data, err = DecodeImage(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP raster from r.
// Unrecognized headers fail with image.ErrFormat.
func DecodeImage(r io.Reader) (*ImageData, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(headerLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	for _, d := range decoders {
		if !d.match(header) {
			continue
		}
		img, err := d.decode(br)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", d.name, err)
		}
		return toImageData(img, d.name), nil
	}
	return nil, fmt.Errorf("failed to decode image: %w", image.ErrFormat)
}

// DecodeTGA decodes a TGA raster from r
func DecodeTGA(r io.Reader) (*ImageData, error) {
	img, err := tga.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tga: %w", err)
	}
	return toImageData(img, "tga"), nil
}

func toImageData(img image.Image, format string) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pix := make([]uint8, 0, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA returns 16-bit channels
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pix:    pix,
	}
}

// Texture wraps the raster as an image texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pix)
}

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/export"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-list"}, &out); err != nil {
		t.Fatalf("run -list failed: %v", err)
	}
	for _, info := range scene.List() {
		if !strings.Contains(out.String(), info.ID) {
			t.Errorf("Scene list is missing %q:\n%s", info.ID, out.String())
		}
	}
}

func TestRun_RendersImageAndArchive(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "render.png")
	archivePath := filepath.Join(dir, "render.ptfb")

	var out bytes.Buffer
	args := []string{
		"-scene", "default",
		"-width", "16",
		"-spp", "2",
		"-depth", "3",
		"-seed", "11",
		"-supersample", "2",
		"-out", outPath,
		"-archive", archivePath,
		"-codec", "snappy",
	}
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run failed: %v\n%s", err, out.String())
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("Output image missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	// 16x9 after downsampling the 32x18 render
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("Image size = %dx%d, want 16x9", b.Dx(), b.Dy())
	}

	af, err := os.Open(archivePath)
	if err != nil {
		t.Fatalf("Archive missing: %v", err)
	}
	defer af.Close()
	fb, codec, err := export.ReadArchive(af)
	if err != nil {
		t.Fatalf("ReadArchive failed: %v", err)
	}
	if codec != export.CodecSnappy {
		t.Errorf("Archive codec = %v, want snappy", codec)
	}
	if fb.Width != 32 || fb.Height != 18 {
		t.Errorf("Archived framebuffer = %dx%d, want full-resolution 32x18", fb.Width, fb.Height)
	}

	for _, want := range []string{"Scene contains ", "Render saved as"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Missing %q in output:\n%s", want, out.String())
		}
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "from-config.webp")
	cfgPath := filepath.Join(dir, "render.json")
	body := `{"scene": "cornell", "width": 8, "samplesPerPixel": 1, "maxDepth": 2, "output": "` +
		filepath.ToSlash(outPath) + `"}`
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	// Flags override the file
	if err := run(context.Background(), []string{"-config", cfgPath, "-width", "6"}, &out); err != nil {
		t.Fatalf("run failed: %v\n%s", err, out.String())
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("Output from config not written: %v", err)
	}
	if !strings.Contains(out.String(), "Rendering 6x6") {
		t.Errorf("Width flag did not override config file:\n%s", out.String())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown scene", []string{"-scene", "nonexistent"}, scene.ErrUnknownScene},
		{"bad codec", []string{"-codec", "lz4"}, export.ErrUnknownCodec},
		{"missing config", []string{"-config", "does-not-exist.json"}, os.ErrNotExist},
		{"help", []string{"-h"}, flag.ErrHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), tt.args, &out)
			if !errors.Is(err, tt.want) {
				t.Errorf("run(%v) error = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "never.png")
	err := run(ctx, []string{"-scene", "default", "-width", "8", "-spp", "1", "-out", out}, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("No image should be written for a cancelled render")
	}
}

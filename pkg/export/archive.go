package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Codec selects the compression used for framebuffer archives
type Codec uint8

const (
	CodecZstd Codec = iota + 1
	CodecSnappy
)

const (
	archiveMagic   = "PTFB"
	archiveVersion = 1

	// Caps the allocation a corrupt header can request
	maxArchivePixels = 1 << 28
)

var (
	ErrBadArchive   = errors.New("not a framebuffer archive")
	ErrUnknownCodec = errors.New("unknown archive codec")
)

func (c Codec) String() string {
	switch c {
	case CodecZstd:
		return "zstd"
	case CodecSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

// ParseCodec maps a codec name to its Codec
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "zstd", "":
		return CodecZstd, nil
	case "snappy":
		return CodecSnappy, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownCodec)
	}
}

type archiveHeader struct {
	Magic   [4]byte
	Version uint8
	Codec   Codec
	Width   uint32
	Height  uint32
}

// WriteArchive stores the framebuffer's float colors so a render can be reloaded without
// 8-bit quantization. The header is uncompressed; pixel data follows as little-endian
// float32 RGB triples through the chosen codec.
func WriteArchive(w io.Writer, fb *renderer.Framebuffer, codec Codec) error {
	if codec != CodecZstd && codec != CodecSnappy {
		return fmt.Errorf("%s: %w", codec, ErrUnknownCodec)
	}
	hdr := archiveHeader{
		Version: archiveVersion,
		Codec:   codec,
		Width:   uint32(fb.Width),
		Height:  uint32(fb.Height),
	}
	copy(hdr.Magic[:], archiveMagic)

	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("failed to write archive header: %w", err)
	}
	stream, err := newCompressor(w, codec)
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(stream)
	var triple [12]byte
	for _, c := range fb.Pixels {
		binary.LittleEndian.PutUint32(triple[0:], math.Float32bits(float32(c.X)))
		binary.LittleEndian.PutUint32(triple[4:], math.Float32bits(float32(c.Y)))
		binary.LittleEndian.PutUint32(triple[8:], math.Float32bits(float32(c.Z)))
		if _, err := buf.Write(triple[:]); err != nil {
			stream.Close()
			return fmt.Errorf("failed to write pixels: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		stream.Close()
		return fmt.Errorf("failed to write pixels: %w", err)
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("failed to finish %s stream: %w", codec, err)
	}
	return nil
}

// ReadArchive loads a framebuffer written by WriteArchive
func ReadArchive(r io.Reader) (*renderer.Framebuffer, Codec, error) {
	var hdr archiveHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, 0, fmt.Errorf("failed to read archive header: %w", err)
	}
	if string(hdr.Magic[:]) != archiveMagic {
		return nil, 0, ErrBadArchive
	}
	if hdr.Version != archiveVersion {
		return nil, 0, fmt.Errorf("version %d: %w", hdr.Version, ErrBadArchive)
	}
	if uint64(hdr.Width)*uint64(hdr.Height) > maxArchivePixels {
		return nil, 0, fmt.Errorf("%dx%d: %w", hdr.Width, hdr.Height, ErrBadArchive)
	}

	stream, err := newDecompressor(r, hdr.Codec)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	fb := renderer.NewFramebuffer(int(hdr.Width), int(hdr.Height))
	buf := bufio.NewReader(stream)
	var triple [12]byte
	for i := range fb.Pixels {
		if _, err := io.ReadFull(buf, triple[:]); err != nil {
			return nil, 0, fmt.Errorf("failed to read pixel %d: %w", i, err)
		}
		fb.Pixels[i] = core.NewVec3(
			float64(math.Float32frombits(binary.LittleEndian.Uint32(triple[0:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(triple[4:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(triple[8:]))),
		)
	}
	return fb, hdr.Codec, nil
}

func newCompressor(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return enc, nil
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("%s: %w", codec, ErrUnknownCodec)
	}
}

type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newDecompressor(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return zstdReadCloser{dec}, nil
	case CodecSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%s: %w", codec, ErrUnknownCodec)
	}
}

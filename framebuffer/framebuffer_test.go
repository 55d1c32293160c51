package framebuffer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/echoflaresat/tinyray/vectors"
)

// gradient fills a buffer with a deterministic color ramp.
func gradient(width, height int) *Framebuffer {
	f := New(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			f.Set(row, col, vectors.Vec3{
				float32(row*17%256) / 255,
				float32(col*29%256) / 255,
				float32((row+col)*7%256) / 255,
			})
		}
	}
	return f
}

func TestRowMajorLayout(t *testing.T) {
	f := New(4, 3)
	f.Set(2, 1, vectors.Vec3{1, 2, 3})

	if got := f.Index(2, 1); got != 9 {
		t.Fatalf("Index(2, 1) = %d, want 9", got)
	}
	if f.Pixels()[9] != (vectors.Vec3{1, 2, 3}) {
		t.Errorf("pixel not stored at col + row*width")
	}
	if len(f.Pixels()) != 12 {
		t.Errorf("len(Pixels()) = %d, want 12", len(f.Pixels()))
	}
}

func TestStorageIsUnclamped(t *testing.T) {
	f := New(1, 1)
	f.Set(0, 0, vectors.Vec3{-0.5, 3, 0.25})
	if got := f.At(0, 0); got != (vectors.Vec3{-0.5, 3, 0.25}) {
		t.Errorf("At(0, 0) = %v, want unclamped value", got)
	}
}

func TestImageClampsAndTruncates(t *testing.T) {
	f := New(2, 1)
	f.Set(0, 0, vectors.Vec3{-0.5, 3, 0.25})
	f.Set(0, 1, vectors.Vec3{0.2, 0.7, 0.8})

	img := f.Image()
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 255, 63, 255}) {
		t.Errorf("pixel (0,0) = %v, want {0 255 63 255}", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{51, 178, 204, 255}) {
		t.Errorf("pixel (0,1) = %v, want {51 178 204 255}", got)
	}
}

func TestWritePNGDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := New(7, 5).WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("failed to decode written PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Errorf("decoded size %dx%d, want 7x5", b.Dx(), b.Dy())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	want := gradient(16, 9)
	wantImg := want.Image()
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.tiff", "OUT.TIF"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := want.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 9 {
				t.Fatalf("loaded %v, want 16x9", got.Bounds())
			}
			b := got.Bounds()
			for y := 0; y < 9; y++ {
				for x := 0; x < 16; x++ {
					c := color.NRGBAModel.Convert(got.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
					if c != wantImg.NRGBAAt(x, y) {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, wantImg.NRGBAAt(x, y))
					}
				}
			}
		})
	}
}

func TestFromImage(t *testing.T) {
	img := New(3, 2).Image()
	img.SetNRGBA(2, 1, color.NRGBA{255, 0, 51, 255})

	f := FromImage(img)
	if f.Width() != 3 || f.Height() != 2 {
		t.Fatalf("FromImage size %dx%d, want 3x2", f.Width(), f.Height())
	}
	if got := f.At(1, 2); got != (vectors.Vec3{1, 0, 0.2}) {
		t.Errorf("At(1, 2) = %v, want [1 0 0.2]", got)
	}
}

func TestSaveJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := gradient(8, 8).Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Width() != 8 || got.Height() != 8 {
		t.Errorf("loaded %dx%d, want 8x8", got.Width(), got.Height())
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	err := New(1, 1).Save(filepath.Join(t.TempDir(), "out.bmp"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.bmp) error = %v, want ErrUnsupportedFormat", err)
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestEncodeErrorWrapsCause(t *testing.T) {
	err := New(4, 4).WritePNG(failingWriter{})

	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("WritePNG error = %v, want *EncodeError", err)
	}
	if encErr.Format != "png" {
		t.Errorf("Format = %q, want png", encErr.Format)
	}
	if !errors.Is(err, errDiskFull) {
		t.Errorf("EncodeError does not unwrap to the writer error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

// rawRGBTIFF builds a little-endian, uncompressed, single-strip 8-bit RGB
// TIFF holding one row of pixels.
func rawRGBTIFF(pixels []color.NRGBA) []byte {
	const (
		entries    = 10
		ifdOffset  = 8
		bpsOffset  = ifdOffset + 2 + entries*12 + 4
		dataOffset = bpsOffset + 6
	)
	type entry struct {
		tag, typ uint16
		value    uint32
	}
	const short, long = 3, 4
	ifd := []entry{
		{256, short, uint32(len(pixels))}, // ImageWidth
		{257, short, 1},                   // ImageLength
		{258, short, bpsOffset},           // BitsPerSample, 3 values
		{259, short, 1},                   // Compression: none
		{262, short, 2},                   // PhotometricInterpretation: RGB
		{273, long, dataOffset},           // StripOffsets
		{277, short, 3},                   // SamplesPerPixel
		{278, short, 1},                   // RowsPerStrip
		{279, long, uint32(3 * len(pixels))},
		{284, short, 1}, // PlanarConfiguration: chunky
	}

	var buf bytes.Buffer
	le := binary.LittleEndian
	buf.WriteString("II")
	_ = binary.Write(&buf, le, uint16(42))
	_ = binary.Write(&buf, le, uint32(ifdOffset))
	_ = binary.Write(&buf, le, uint16(len(ifd)))
	for _, e := range ifd {
		_ = binary.Write(&buf, le, e.tag)
		_ = binary.Write(&buf, le, e.typ)
		count := uint32(1)
		if e.tag == 258 {
			count = 3
		}
		_ = binary.Write(&buf, le, count)
		if e.typ == short && count == 1 {
			_ = binary.Write(&buf, le, uint16(e.value))
			_ = binary.Write(&buf, le, uint16(0))
		} else {
			_ = binary.Write(&buf, le, e.value)
		}
	}
	_ = binary.Write(&buf, le, uint32(0)) // no next IFD
	_ = binary.Write(&buf, le, [3]uint16{8, 8, 8})
	for _, p := range pixels {
		buf.Write([]byte{p.R, p.G, p.B})
	}
	return buf.Bytes()
}

func TestLoadUncompressedRGBTIFF(t *testing.T) {
	pixels := []color.NRGBA{{255, 0, 51, 255}, {0, 102, 255, 255}}
	path := filepath.Join(t.TempDir(), "raw.tif")
	if err := os.WriteFile(path, rawRGBTIFF(pixels), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Width() != 2 || f.Height() != 1 {
		t.Fatalf("loaded %dx%d, want 2x1", f.Width(), f.Height())
	}
	for col, p := range pixels {
		want := vectors.Vec3{float32(p.R) / 255, float32(p.G) / 255, float32(p.B) / 255}
		if got := f.At(0, col); got != want {
			t.Errorf("At(0, %d) = %v, want %v", col, got, want)
		}
	}

	// pixels stay readable after the file is gone
	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := color.NRGBAModel.Convert(img.At(img.Bounds().Min.X+1, img.Bounds().Min.Y)); got != pixels[1] {
		t.Errorf("pixel (1,0) = %v, want %v", got, pixels[1])
	}
}

func TestLoadWarnsOnTIFFFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := gradient(4, 4).Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	if _, err := Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	out := logs.String()
	for _, want := range []string{"level=WARN", "path=" + path, "error="} {
		if !strings.Contains(out, want) {
			t.Errorf("fallback log %q does not contain %q", out, want)
		}
	}
}

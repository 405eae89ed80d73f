package frame

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leomartinch/raytracer/types"
)

func TestToByte(t *testing.T) {
	type spec struct {
		in  float64
		exp uint8
	}

	specs := []spec{
		{0, 0},
		{-0.5, 0},
		{0.5, 127},
		{1, 255},
		{3.7, 255},
		{0.999, 254},
	}

	for specIndex, s := range specs {
		if got := ToByte(s.in); got != s.exp {
			t.Fatalf("[spec %d] expected %d; got %d", specIndex, s.exp, got)
		}
	}
}

func TestInvalidDimensions(t *testing.T) {
	if _, err := NewBuffer(0, 3); err == nil {
		t.Fatal("expected an error for a zero width frame")
	}
}

func testFrame(t *testing.T) *Buffer {
	buf, err := NewBuffer(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	buf.Set(0, 0, types.XYZ(1, 0, 0))
	buf.Set(0, 1, types.XYZ(0, 1, 0))
	buf.Set(1, 0, types.XYZ(0, 0, 1))
	buf.Set(1, 1, types.XYZ(2, 0.5, -1))
	return buf
}

func TestWritePPM(t *testing.T) {
	var out bytes.Buffer
	if err := testFrame(t).WritePPM(&out); err != nil {
		t.Fatal(err)
	}

	exp := "P3\n2 2\n255\n255 0 0 0 255 0\n0 0 255 255 127 0\n"
	if out.String() != exp {
		t.Fatalf("expected ppm output:\n%s\ngot:\n%s", exp, out.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	for _, line := range lines[3:] {
		if fields := strings.Fields(line); len(fields) != 6 {
			t.Fatalf("expected 2 triplets per row; got %q", line)
		}
	}
}

func TestWritePNG(t *testing.T) {
	var out bytes.Buffer
	if err := testFrame(t).WritePNG(&out); err != nil {
		t.Fatal(err)
	}

	im, err := png.Decode(&out)
	if err != nil {
		t.Fatal(err)
	}
	if b := im.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("expected 2x2 image; got %dx%d", b.Dx(), b.Dy())
	}

	r, g, b, a := im.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 127 || b>>8 != 0 || a>>8 != 255 {
		t.Fatalf("expected pixel (255, 127, 0, 255); got (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestSaveSelectsEncoder(t *testing.T) {
	dir := t.TempDir()
	buf := testFrame(t)

	ppmFile := filepath.Join(dir, "out.ppm")
	if err := buf.Save(ppmFile); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(ppmFile)
	if !bytes.HasPrefix(data, []byte("P3\n")) {
		t.Fatalf("expected a P3 header; got %q", data[:8])
	}

	pngFile := filepath.Join(dir, "out.PNG")
	if err := buf.Save(pngFile); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(pngFile)
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("expected a png signature")
	}

	if err := buf.Save(filepath.Join(dir, "missing", "out.ppm")); err == nil {
		t.Fatal("expected an error when the output directory does not exist")
	}
}

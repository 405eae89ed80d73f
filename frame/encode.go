package frame

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leomartinch/raytracer/log"
)

var logger = log.New("frame")

// WritePPM encodes the buffer as an ASCII (P3) portable pixmap. Each image
// row is written on its own line.
func (b *Buffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.W, b.H); err != nil {
		return err
	}

	rgb := b.RGB8()
	line := make([]byte, 0, b.W*12)
	for h := 0; h < b.H; h++ {
		line = line[:0]
		for w := 0; w < b.W; w++ {
			if w > 0 {
				line = append(line, ' ')
			}
			offset := (h*b.W + w) * 3
			line = strconv.AppendUint(line, uint64(rgb[offset]), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(rgb[offset+1]), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(rgb[offset+2]), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WritePNG encodes the buffer as an opaque PNG image.
func (b *Buffer) WritePNG(w io.Writer) error {
	im := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	rgb := b.RGB8()
	for index := 0; index < b.W*b.H; index++ {
		copy(im.Pix[index*4:], rgb[index*3:index*3+3])
		im.Pix[index*4+3] = 255 // alpha
	}
	return png.Encode(w, im)
}

// Save writes the buffer to a file. The encoder is selected by the file
// extension: ".png" writes a PNG image, anything else a P3 pixmap.
func (b *Buffer) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("frame: could not create %q: %w", filename, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		err = b.WritePNG(f)
	default:
		err = b.WritePPM(f)
	}
	if err != nil {
		return fmt.Errorf("frame: could not encode %q: %w", filename, err)
	}

	logger.Infof("wrote %dx%d frame to %s", b.W, b.H, filename)
	return nil
}

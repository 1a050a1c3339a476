// Package ppm implements the plain-text PPM (P3) image format.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// Encode writes img to w in plain-text P3 format, one text line per pixel row
func Encode(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; the format stores 8-bit
			if _, err := fmt.Fprintf(bw, "%d %d %d ", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("writing ppm pixel: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return fmt.Errorf("writing ppm row: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing ppm output: %w", err)
	}
	return nil
}

// Decode reads a plain-text P3 image from r.
// Comment lines starting with # are skipped, as the format allows.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)

	magic, err := nextToken(br)
	if err != nil {
		return nil, fmt.Errorf("reading ppm magic: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("unsupported ppm magic %q, want P3", magic)
	}

	width, err := nextInt(br)
	if err != nil {
		return nil, fmt.Errorf("reading ppm header: %w", err)
	}
	height, err := nextInt(br)
	if err != nil {
		return nil, fmt.Errorf("reading ppm header: %w", err)
	}
	maxVal, err := nextInt(br)
	if err != nil {
		return nil, fmt.Errorf("reading ppm header: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid ppm dimensions %dx%d", width, height)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("unsupported ppm max value %d, want 255", maxVal)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			red, err := nextInt(br)
			if err != nil {
				return nil, fmt.Errorf("reading pixel (%d,%d): %w", x, y, err)
			}
			green, err := nextInt(br)
			if err != nil {
				return nil, fmt.Errorf("reading pixel (%d,%d): %w", x, y, err)
			}
			blue, err := nextInt(br)
			if err != nil {
				return nil, fmt.Errorf("reading pixel (%d,%d): %w", x, y, err)
			}
			img.SetRGBA(x, y, color.RGBA{R: uint8(red), G: uint8(green), B: uint8(blue), A: 255})
		}
	}

	return img, nil
}

// nextToken returns the next whitespace-delimited token, skipping # comments
// which run to the end of the line
func nextToken(br *bufio.Reader) (string, error) {
	var token []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", err
		}

		switch {
		case b == '#':
			if len(token) > 0 {
				br.UnreadByte()
				return string(token), nil
			}
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func nextInt(br *bufio.Reader) (int, error) {
	token, err := nextToken(br)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(token)
}

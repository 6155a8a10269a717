package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding for uploaded artwork

	"golang.org/x/image/draw"
)

// Thumbnail decodes data, scales it down so the longest edge is at most
// maxEdge pixels, and re-encodes as JPEG. Images already within bounds are
// only re-encoded. Used for news card images uploaded through the admin
// console.
func Thumbnail(data []byte, maxEdge, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width > maxEdge || height > maxEdge {
		if width >= height {
			newWidth = maxEdge
			newHeight = height * maxEdge / width
		} else {
			newHeight = maxEdge
			newWidth = width * maxEdge / height
		}
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

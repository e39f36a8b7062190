package render

import (
	"image"
	"os"

	"termglyph/internal/logging"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP format support
	_ "golang.org/x/image/tiff" // TIFF format support
	_ "golang.org/x/image/webp" // WebP format support
)

const (
	// MaxDimension is the maximum width or height we'll process.
	// Larger images are downscaled before rendering.
	MaxDimension = 4096

	// MaxPixels is the maximum total pixels (width * height) we'll
	// process. A full decode of more would waste memory for a
	// terminal-sized result.
	MaxPixels = 20_000_000
)

// Dimensions returns image dimensions without fully decoding the
// image.
func Dimensions(path string) (width, height int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logging.Warn("failed to close image file " + path)
		}
	}()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return config.Width, config.Height, nil
}

// Open loads an image for rendering, downscaling if it exceeds size
// limits.
func Open(path string) (image.Image, error) {
	width, height, err := Dimensions(path)
	if err != nil {
		logging.Debugf("could not get image dimensions for %s: %v, loading unconstrained", path, err)
		return imaging.Open(path, imaging.AutoOrientation(true))
	}

	pixels := width * height
	logging.Debugf("image %s dimensions: %dx%d (%d pixels)", path, width, height, pixels)

	if width <= MaxDimension && height <= MaxDimension && pixels <= MaxPixels {
		return imaging.Open(path, imaging.AutoOrientation(true))
	}

	targetWidth, targetHeight := width, height
	if width > MaxDimension || height > MaxDimension {
		if width > height {
			targetWidth = MaxDimension
			targetHeight = height * MaxDimension / width
		} else {
			targetHeight = MaxDimension
			targetWidth = width * MaxDimension / height
		}
	}
	if targetWidth*targetHeight > MaxPixels {
		scale := float64(MaxPixels) / float64(targetWidth*targetHeight)
		targetWidth = int(float64(targetWidth) * scale)
		targetHeight = int(float64(targetHeight) * scale)
	}

	logging.Debugf("constraining large image %s from %dx%d to %dx%d", path, width, height, targetWidth, targetHeight)

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, targetWidth, targetHeight, imaging.Lanczos), nil
}

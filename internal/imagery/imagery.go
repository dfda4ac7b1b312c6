// Package imagery handles image decoding and extension-driven encoding.
//
// Decoding supports PNG, JPEG, GIF and WebP. Encoding is selected from the
// destination filename's extension so a derived image keeps the format of its
// source file: jpg/jpeg, png, gif, bmp and tif/tiff go through
// disintegration/imaging, webp through chai2010/webp.
package imagery

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// webpQuality is the encoding quality for lossy WebP output.
const webpQuality = 90

// Open decodes the image at path. The concrete return type depends on the
// format and color model (e.g. *image.YCbCr for JPEG, *image.NRGBA for PNG).
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err == nil {
		return img, nil
	}

	// Some WebP variants are not handled by the registered decoder.
	if _, serr := f.Seek(0, 0); serr == nil {
		if img, werr := webp.Decode(f); werr == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
}

// Save encodes img to path, choosing the encoder from the file extension.
// Unknown extensions are an error.
func Save(img image.Image, path string) error {
	if strings.ToLower(filepath.Ext(path)) == ".webp" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		if err := webp.Encode(f, img, &webp.Options{Quality: webpQuality}); err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		return nil
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

package pixelgrid

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 95

// LoadImage opens and decodes a single image. The file is closed before
// returning, whatever the outcome.
func LoadImage(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	log.Debugf("LoadImage: %s %v", path, img.Bounds())
	return img, nil
}

// LoadImages loads every path as one unit of work: the first failure
// aborts and no images are returned.
func LoadImages(paths []string) ([]image.Image, error) {
	out := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := LoadImage(p)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

// EncoderFor picks an encoder from the extension of path.
func EncoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// SaveImage encodes img into path in the format its extension names.
func SaveImage(img image.Image, path string) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}
	return nil
}

// OutputPaths - n file names next to output, numbered from 0 between its
// stem and extension: out.png becomes out-0.png, out-1.png, ...
func OutputPaths(output string, n int) []string {
	dir := filepath.Dir(output)
	ext := filepath.Ext(output)
	stem := strings.TrimSuffix(filepath.Base(output), ext)

	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, i, ext))
	}
	return paths
}

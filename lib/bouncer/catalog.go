package bouncer

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

var catalogExts = map[string]bool{
	".png": true,
	".gif": true,
}

var ErrEmptyImage = errors.New("scaled image has no pixels")

// Catalog is the list of image files eligible for spawning. It is built
// once and never changes.
type Catalog struct {
	Dir   string
	Paths []string
	Scale float64
}

// ScanCatalog lists the png and gif files of dir in directory order.
// The returned catalog is usable even when err is non-nil; it is empty then.
func ScanCatalog(dir string, scale float64) (*Catalog, error) {
	catalog := &Catalog{Dir: dir, Scale: scale}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return catalog, fmt.Errorf("scan %v: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if catalogExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			catalog.Paths = append(catalog.Paths, filepath.Join(dir, entry.Name()))
		}
	}

	return catalog, nil
}

func (c *Catalog) IsEmpty() bool { return c == nil || len(c.Paths) == 0 }

func (c *Catalog) Pick(rng *rand.Rand) string {
	if c.IsEmpty() {
		return ""
	}
	return c.Paths[rng.Intn(len(c.Paths))]
}

// Load decodes one catalog image and applies the catalog's scale factor.
func (c *Catalog) Load(path string) (image.Image, error) {
	return LoadImage(path, c.Scale)
}

// LoadImage decodes a png or gif file (first frame) and, when scale is not
// 1, resizes it with a Catmull-Rom filter.
func LoadImage(path string, scale float64) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", path, err)
	}

	if scale == 1.0 {
		return img, nil
	}
	return Rescale(img, scale)
}

func Rescale(img image.Image, scale float64) (image.Image, error) {
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rescale %vx%v by %v: %w", b.Dx(), b.Dy(), scale, ErrEmptyImage)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

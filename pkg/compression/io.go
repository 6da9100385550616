package compression

import (
	"bufio"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"quadimg/pkg/codec"
	"quadimg/pkg/qtree"
	"quadimg/pkg/visualization"
)

// LoadImage decodes the image at path in any registered format.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New("opening image failed").
			WithTag("file", path).
			Wrap(err)
	}
	defer file.Close()

	img, format, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, errors.New("decoding image failed").
			WithTag("file", path).
			Wrap(err)
	}
	logs.WithTag("file", path).
		WithTag("format", format).
		WithTag("size", img.Bounds().Size()).
		Debug("image loaded")
	return img, nil
}

// SaveImage writes img as JPEG for .jpg/.jpeg paths and PNG otherwise.
func SaveImage(img image.Image, path string) error {
	if err := visualization.SaveImage(img, path); err != nil {
		return errors.New("saving image failed").
			WithTag("file", path).
			Wrap(err)
	}
	return nil
}

// SaveTree encodes t into path at the given zstd level.
func SaveTree(t *qtree.QTree, path string, level int) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.New("creating tree file failed").
			WithTag("file", path).
			Wrap(err)
	}

	w := bufio.NewWriter(file)
	if err := codec.Encode(w, t, level); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return errors.New("writing tree file failed").
			WithTag("file", path).
			Wrap(err)
	}
	return file.Close()
}

// LoadTree decodes the tree stored at path.
func LoadTree(path string) (*qtree.QTree, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New("opening tree file failed").
			WithTag("file", path).
			Wrap(err)
	}
	defer file.Close()

	t, err := codec.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, errors.New("decoding tree file failed").
			WithTag("file", path).
			Wrap(err)
	}
	return t, nil
}

// Decompress renders the tree stored at in into the image file out.
func Decompress(in, out string, scale int) error {
	t, err := LoadTree(in)
	if err != nil {
		return err
	}
	img, err := t.Render(scale)
	if err != nil {
		return err
	}
	logs.WithTag("in", in).
		WithTag("out", out).
		WithTag("scale", scale).
		Info("rendering tree")
	return SaveImage(img, out)
}

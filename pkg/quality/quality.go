// Package quality measures how faithfully a rendered quadtree reproduces the
// image it was built from.
package quality

import (
	"image"
	"image/color"
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"quadimg/internal/models"
	"quadimg/pkg/pixel"
)

// ErrTypeSizeMismatch is reported when the compared images differ in size.
const ErrTypeSizeMismatch = "quality_size_mismatch"

// Metrics holds fidelity measurements between an original image and a render.
// Channel values are normalized to the 0-1 range before comparison.
type Metrics struct {
	// RMSE is the root mean square error over all four channels.
	// Lower is better, 0 means identical.
	RMSE float64

	// PSNR is the peak signal-to-noise ratio in decibels. It is +Inf for
	// identical images.
	PSNR float64

	// SSIM is the global structural similarity index averaged over the four
	// channels. 1 means identical.
	SSIM float64

	// MaxError is the largest single-channel difference.
	MaxError float64

	// LeafRatio is the number of leaves per source pixel, when known.
	LeafRatio float64
}

// Compare measures rendered against original. Both images must have the same
// dimensions; their origins may differ.
func Compare(original, rendered image.Image) (Metrics, error) {
	ob, rb := original.Bounds(), rendered.Bounds()
	if ob.Dx() != rb.Dx() || ob.Dy() != rb.Dy() {
		return Metrics{}, errors.New("images differ in size").
			WithType(ErrTypeSizeMismatch).
			WithTag("original", ob.Size().String()).
			WithTag("rendered", rb.Size().String())
	}

	orig := channels(original)
	rend := channels(rendered)

	var m Metrics
	var sse float64
	n := 0
	for c := 0; c < pixel.Channels; c++ {
		for i := range orig[c] {
			d := orig[c][i] - rend[c][i]
			sse += d * d
			if math.Abs(d) > m.MaxError {
				m.MaxError = math.Abs(d)
			}
			n++
		}
		m.SSIM += ssim(orig[c], rend[c])
	}
	m.SSIM /= pixel.Channels

	if n > 0 {
		m.RMSE = math.Sqrt(sse / float64(n))
	}
	m.PSNR = psnr(m.RMSE)
	return m, nil
}

// CompareTree is Compare with the leaf ratio taken from the tree statistics.
func CompareTree(original, rendered image.Image, stats models.TreeStats) (Metrics, error) {
	m, err := Compare(original, rendered)
	if err != nil {
		return m, err
	}
	m.LeafRatio = stats.LeafRatio()
	return m, nil
}

// channels splits an image into four planes of normalized channel values.
func channels(img image.Image) [pixel.Channels][]float64 {
	b := img.Bounds()
	var out [pixel.Channels][]float64
	for c := range out {
		out[c] = make([]float64, 0, b.Dx()*b.Dy())
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out[0] = append(out[0], float64(p.R)/255)
			out[1] = append(out[1], float64(p.G)/255)
			out[2] = append(out[2], float64(p.B)/255)
			out[3] = append(out[3], float64(p.A)/255)
		}
	}
	return out
}

func psnr(rmse float64) float64 {
	if rmse == 0 {
		return math.Inf(1)
	}
	return 20 * math.Log10(1/rmse)
}

// ssim computes the structural similarity of two planes over the whole image
func ssim(x, y []float64) float64 {
	const (
		L  = 1.0
		k1 = 0.01
		k2 = 0.03
	)
	c1 := (k1 * L) * (k1 * L)
	c2 := (k2 * L) * (k2 * L)

	muX := stat.Mean(x, nil)
	muY := stat.Mean(y, nil)

	var sigmaX, sigmaY, sigmaXY float64
	if len(x) > 1 {
		sigmaX = stat.Variance(x, nil)
		sigmaY = stat.Variance(y, nil)
		sigmaXY = stat.Covariance(x, y, nil)
	}

	num := (2*muX*muY + c1) * (2*sigmaXY + c2)
	den := (muX*muX + muY*muY + c1) * (sigmaX + sigmaY + c2)
	if den > 0 {
		return num / den
	}
	return 0
}

package pixel

import (
	"math"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrTypeInvalidArgument is reported for out of range or unknown inputs.
const ErrTypeInvalidArgument = "invalid_argument"

// Metric measures how far apart two colors are. Implementations must be
// symmetric, non-negative, and return zero only for identical colors.
type Metric interface {
	Name() string
	Distance(a, b Pixel) float64
}

var (
	// Euclidean compares the raw channel values, alpha included.
	Euclidean Metric = euclidean{}

	// Lab compares colors in CIE L*a*b* space scaled to the usual 0-100
	// lightness range, plus the alpha difference on the same scale.
	Lab Metric = lab{}
)

// ParseMetric resolves a metric by name ("euclidean", "lab").
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean", "rgba":
		return Euclidean, nil
	case "lab", "cielab":
		return Lab, nil
	}
	return nil, errors.New("unknown color metric").
		WithType(ErrTypeInvalidArgument).
		WithTag("metric", name)
}

type euclidean struct{}

func (euclidean) Name() string { return "euclidean" }

func (euclidean) Distance(a, b Pixel) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	da := float64(a.A) - float64(b.A)
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

type lab struct{}

func (lab) Name() string { return "lab" }

func (lab) Distance(a, b Pixel) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	de := ca.DistanceLab(cb) * 100
	dAlpha := (float64(a.A) - float64(b.A)) * 100 / 255
	return math.Sqrt(de*de + dAlpha*dAlpha)
}

package qtree

import "quadimg/pkg/pixel"

// Weighted is a color together with the number of pixels it stands for.
type Weighted struct {
	Color pixel.Pixel
	Area  int
}

// Average returns the area-weighted mean of the given colors, channel by
// channel. Sums are accumulated as floats and truncated back to 8 bits once.
// Entries with zero area contribute nothing; if the total area is zero the
// zero Pixel is returned.
func Average(ws ...Weighted) pixel.Pixel {
	var sums [pixel.Channels]float64
	var area float64

	for _, w := range ws {
		if w.Area <= 0 {
			continue
		}
		a := float64(w.Area)
		area += a
		for i := range sums {
			sums[i] += w.Color.Channel(i) * a
		}
	}

	if area == 0 {
		return pixel.Pixel{}
	}
	return pixel.New(sums[0]/area, sums[1]/area, sums[2]/area, sums[3]/area)
}

// averageChildren derives a parent color from its present children only.
func averageChildren(n *Node) pixel.Pixel {
	var ws []Weighted
	for _, c := range n.Children() {
		if c != nil {
			ws = append(ws, Weighted{Color: c.Average, Area: c.Area()})
		}
	}
	return Average(ws...)
}

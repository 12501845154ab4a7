package stitchgrid

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/muesli/clusters"
)

const (
	// BinWidth is the histogram bucket width per channel on a 0..255 scale.
	BinWidth = 16
	// LloydIterations is the fixed number of refinement passes.
	LloydIterations = 10

	binsPerChannel = 256 / BinWidth
	binCount       = binsPerChannel * binsPerChannel * binsPerChannel
)

// colorBin is one non-empty cell of the coarse RGB histogram.
type colorBin struct {
	key   int
	count int
	mean  PaletteColor
	// luminance of the unrounded mean, used for tie-breaking
	lum float64
}

func binKey(p Pixel) int {
	r := int(p.R) / BinWidth
	g := int(p.G) / BinWidth
	b := int(p.B) / BinWidth
	return (r*binsPerChannel+g)*binsPerChannel + b
}

// rankedBins builds the histogram and orders bins by descending count,
// then by descending luminance, then by ascending bin key.
func rankedBins(pixels []Pixel) []colorBin {
	sums := make([][4]int, binCount)
	for _, p := range pixels {
		s := &sums[binKey(p)]
		s[0] += int(p.R)
		s[1] += int(p.G)
		s[2] += int(p.B)
		s[3]++
	}

	bins := make([]colorBin, 0, 64)
	for key, s := range sums {
		n := s[3]
		if n == 0 {
			continue
		}
		fn := float64(n)
		bins = append(bins, colorBin{
			key:   key,
			count: n,
			mean:  NewPaletteColor(roundDiv(s[0], n), roundDiv(s[1], n), roundDiv(s[2], n)),
			lum:   Luminance(float64(s[0])/fn, float64(s[1])/fn, float64(s[2])/fn),
		})
	}
	slices.SortStableFunc(bins, func(a, b colorBin) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(b.lum, a.lum)
	})
	return bins
}

// roundDiv rounds sum/n half up; sum and n are non-negative.
func roundDiv(sum, n int) int {
	return (2*sum + n) / (2 * n)
}

// Quantize reduces pixels to at most k colors.
//
// When the pixels fall into no more than k histogram bins the bin means are
// returned verbatim, so images that already use few colors keep them exactly.
// Otherwise k centroids seeded from the most populated bins are refined with
// LloydIterations passes of Lloyd's algorithm. The result is deterministic.
// An empty pixel slice yields an empty palette.
func Quantize(pixels []Pixel, k int) Palette {
	if len(pixels) == 0 {
		return Palette{}
	}
	k = ClampColors(k)
	bins := rankedBins(pixels)

	if len(bins) <= k {
		Logger().Debug("quantize: bin fast path", slog.Int("bins", len(bins)), slog.Int("k", k))
		palette := make(Palette, len(bins))
		for i, b := range bins {
			palette[i] = b.mean
		}
		return palette
	}

	Logger().Debug("quantize: lloyd refinement",
		slog.Int("bins", len(bins)), slog.Int("k", k), slog.Int("pixels", len(pixels)))
	return lloyd(pixels, seedCentroids(bins, k), LloydIterations)
}

// seedCentroids takes the means of the top k bins, repeating the
// lowest-ranked bin when there are fewer than k.
func seedCentroids(bins []colorBin, k int) []PaletteColor {
	seeds := make([]PaletteColor, k)
	for i := range k {
		if i < len(bins) {
			seeds[i] = bins[i].mean
		} else {
			seeds[i] = bins[len(bins)-1].mean
		}
	}
	return seeds
}

// lloyd runs a fixed number of assign/recenter passes. A cluster that
// receives no pixels keeps its previous centroid.
func lloyd(pixels []Pixel, seeds []PaletteColor, iterations int) Palette {
	dataset := make(clusters.Observations, len(pixels))
	for i, p := range pixels {
		dataset[i] = clusters.Coordinates{float64(p.R), float64(p.G), float64(p.B)}
	}

	cc := make(clusters.Clusters, len(seeds))
	for i, s := range seeds {
		cc[i] = clusters.Cluster{
			Center: clusters.Coordinates{float64(s.R), float64(s.G), float64(s.B)},
		}
	}

	for range iterations {
		cc.Reset()
		for _, o := range dataset {
			ci := cc.Nearest(o)
			cc[ci].Append(o)
		}
		cc.Recenter()
	}

	palette := make(Palette, len(cc))
	for i, c := range cc {
		palette[i] = NewPaletteColor(
			int(math.Round(c.Center[0])),
			int(math.Round(c.Center[1])),
			int(math.Round(c.Center[2])),
		)
	}
	return palette
}

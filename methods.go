package stitchgrid

import (
	"cmp"
	"fmt"
	"image"
	"log/slog"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/esimov/colorquant"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Method selects the palette extraction algorithm.
type Method string

const (
	// MethodBinned is the deterministic bin-seeded quantizer (see Quantize).
	MethodBinned Method = "binned"
	// MethodKMeans runs randomly seeded k-means; results vary between runs.
	MethodKMeans Method = "kmeans"
	// MethodDominant picks the most dominant colors of the image.
	MethodDominant Method = "dominant"
	// MethodMedianCut uses median-cut quantization.
	MethodMedianCut Method = "mediancut"
)

// Methods lists the valid method names.
func Methods() []Method {
	return []Method{MethodBinned, MethodKMeans, MethodDominant, MethodMedianCut}
}

// ParseMethod validates a method name. The empty string selects MethodBinned.
func ParseMethod(s string) (Method, error) {
	if s == "" {
		return MethodBinned, nil
	}
	m := Method(s)
	if !slices.Contains(Methods(), m) {
		return "", fmt.Errorf("%w: %q (valid: %v)", ErrUnknownMethod, s, Methods())
	}
	return m, nil
}

func (m Method) String() string {
	if m == "" {
		return string(MethodBinned)
	}
	return string(m)
}

// maxKMeansSamples bounds the dataset handed to k-means.
const maxKMeansSamples = 12000

// ExtractPalette builds a palette of at most k colors with the given method.
// img is the pre-scaled source and ras its raster. Methods other than
// MethodBinned fall back to it when they produce no colors.
func ExtractPalette(img image.Image, ras *Raster, k int, method Method) Palette {
	k = ClampColors(k)
	var p Palette
	switch method {
	case MethodKMeans:
		p = kmeansPalette(ras, k)
	case MethodDominant:
		p = dominantPalette(img, k)
	case MethodMedianCut:
		p = medianCutPalette(img, k)
	default:
		return Quantize(ras.Pix, k)
	}
	if len(p) == 0 {
		Logger().Warn("palette method returned no colors, falling back",
			slog.String("method", method.String()), slog.String("fallback", string(MethodBinned)))
		return Quantize(ras.Pix, k)
	}
	return p
}

func kmeansPalette(ras *Raster, k int) Palette {
	if len(ras.Pix) == 0 {
		return nil
	}
	step := 1
	if len(ras.Pix) > maxKMeansSamples {
		step = len(ras.Pix)/maxKMeansSamples + 1
	}
	dataset := make(clusters.Observations, 0, len(ras.Pix)/step+1)
	distinct := make(map[Pixel]struct{})
	for i := 0; i < len(ras.Pix); i += step {
		p := ras.Pix[i]
		distinct[p] = struct{}{}
		dataset = append(dataset, clusters.Coordinates{float64(p.R), float64(p.G), float64(p.B)})
	}
	k = min(k, len(distinct))

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		Logger().Debug("kmeans partition failed", slog.Any("error", err))
		return nil
	}

	// Dominant clusters first.
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return cmp.Compare(len(b.Observations), len(a.Observations))
	})
	out := make(Palette, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		pc := NewPaletteColor(
			int(math.Round(c.Center[0])),
			int(math.Round(c.Center[1])),
			int(math.Round(c.Center[2])),
		)
		// Converged clusters can share a center.
		if slices.Contains(out, pc) {
			continue
		}
		out = append(out, pc)
	}
	return out
}

func dominantPalette(img image.Image, k int) Palette {
	cands := dominantcolor.FindWeight(img, k)
	out := make(Palette, 0, len(cands))
	for _, c := range cands {
		pc := NewPaletteColor(int(c.RGBA.R), int(c.RGBA.G), int(c.RGBA.B))
		if !slices.Contains(out, pc) {
			out = append(out, pc)
		}
	}
	return out
}

func medianCutPalette(img image.Image, k int) Palette {
	// Cluster means are written through dst.Set, so dst must keep full RGB.
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	out := colorquant.NoDither.Quantize(img, dst, k, false, true)
	return paletteByFrequency(NewRaster(out), k)
}

// paletteByFrequency returns the distinct colors of ras ordered by pixel
// count, then luminance, both descending, truncated to k.
func paletteByFrequency(ras *Raster, k int) Palette {
	counts := make(map[Pixel]int)
	for _, p := range ras.Pix {
		counts[p]++
	}
	type entry struct {
		px Pixel
		n  int
	}
	entries := make([]entry, 0, len(counts))
	for px, n := range counts {
		entries = append(entries, entry{px, n})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.n, a.n); c != 0 {
			return c
		}
		la := Luminance(float64(a.px.R), float64(a.px.G), float64(a.px.B))
		lb := Luminance(float64(b.px.R), float64(b.px.G), float64(b.px.B))
		if c := cmp.Compare(lb, la); c != 0 {
			return c
		}
		return cmp.Compare(binKeyExact(a.px), binKeyExact(b.px))
	})
	out := make(Palette, 0, min(k, len(entries)))
	for _, e := range entries[:min(k, len(entries))] {
		out = append(out, NewPaletteColor(int(e.px.R), int(e.px.G), int(e.px.B)))
	}
	return out
}

func binKeyExact(p Pixel) int {
	return int(p.R)<<16 | int(p.G)<<8 | int(p.B)
}

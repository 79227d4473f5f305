package render

import (
	"image"
	"image/color"
	"math"
)

// FillColorRGBA converts packed rgb float colors into opaque RGBA pixels in buf.
func FillColorRGBA(buf []byte, colors []float32) {
	n := len(colors) / 3
	for i := 0; i < n; i++ {
		base := i * 4
		buf[base+0] = unit8(colors[3*i])
		buf[base+1] = unit8(colors[3*i+1])
		buf[base+2] = unit8(colors[3*i+2])
		buf[base+3] = 255
	}
}

// FillDepthRGBA maps depths in [lo, hi] to grayscale, nearest brightest. A
// degenerate range paints mid gray.
func FillDepthRGBA(buf []byte, depths []float32, lo, hi float32) {
	span := float64(hi - lo)
	for i, d := range depths {
		v := 0.5
		if span > 0 {
			v = 1 - clamp01(float64(d-lo)/span)
		}
		g := uint8(math.Round(v * 255))
		base := i * 4
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 255
	}
}

// FillElevationRGBA colors heights with a fixed blue-green-sand-white ramp
// normalized to the field's own range.
func FillElevationRGBA(buf []byte, heights []float64) {
	if len(heights) == 0 {
		return
	}
	lo, hi := heights[0], heights[0]
	for _, h := range heights {
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for i, h := range heights {
		col := elevationColor((h - lo) / span)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ColorImage packs a grid of rgb colors into an image of cols×rows pixels.
func ColorImage(colors []float32, cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	if len(colors) == 3*cols*rows {
		FillColorRGBA(img.Pix, colors)
	}
	return img
}

// DepthImage packs a grid of depths into a grayscale-valued RGBA image.
func DepthImage(depths []float32, lo, hi float32, cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	if len(depths) == cols*rows {
		FillDepthRGBA(img.Pix, depths, lo, hi)
	}
	return img
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 20, G: 40, B: 90, A: 255}},
		{0.3, color.RGBA{R: 70, G: 120, B: 190, A: 255}},
		{0.5, color.RGBA{R: 90, G: 150, B: 90, A: 255}},
		{0.75, color.RGBA{R: 190, G: 170, B: 110, A: 255}},
		{1.0, color.RGBA{R: 245, G: 245, B: 245, A: 255}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			local := (t - prev.t) / (curr.t - prev.t)
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func unit8(v float32) uint8 {
	return uint8(math.Round(clamp01(float64(v)) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

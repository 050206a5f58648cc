package palette

import (
	"fmt"
	"math"
)

// Darken dims a shaded color based on the window's horizontal position in its
// plotted row. Columns past threshold×width are progressively darkened,
// linearly from no change at the threshold up to maxDiff at the last column.
// Darkening scales the luminosity channel only, so hue is preserved.
func Darken(color string, x, width int, threshold, maxDiff float64) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("row width must be positive, got %d", width)
	}

	colFrac := float64(x) / float64(width)
	if colFrac <= threshold {
		return color, nil
	}

	diff := (colFrac - threshold) / (1 - threshold)
	factor := 1 - maxDiff*diff

	r, g, b, err := HexToRGB(color)
	if err != nil {
		return "", err
	}

	h, s, l := rgbToHSL(r, g, b)
	nr, ng, nb := hslToRGB(h, s, l*factor)

	return RGBToHex(nr, ng, nb), nil
}

// rgbToHSL converts 8-bit RGB channels to hue/saturation/luminosity, each in
// [0,1].
func rgbToHSL(r, g, b uint8) (h, s, l float64) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return h, s, l
}

func hslToRGB(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := channel(l)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return channel(hueToChannel(p, q, h+1.0/3)),
		channel(hueToChannel(p, q, h)),
		channel(hueToChannel(p, q, h-1.0/3))
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}

	return p
}

func channel(v float64) uint8 {
	c := int(math.Round(v * 255))
	if c < 0 {
		c = 0
	}
	if c > 255 {
		c = 255
	}

	return uint8(c)
}

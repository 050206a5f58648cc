// Package palette turns window categories and GC content into display
// colors: per-category gradients, GC-ratio shade lookup, and the positional
// darkening applied toward the right edge of each plotted row.
package palette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// HexToRGB parses a "#RRGGBB" color.
func HexToRGB(hex string) (r, g, b uint8, err error) {
	if !hexColor.MatchString(hex) {
		return 0, 0, 0, fmt.Errorf("color %q is not in #RRGGBB format", hex)
	}

	hex = strings.ToLower(hex)
	for i, out := range []*uint8{&r, &g, &b} {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, err
		}
		*out = uint8(v)
	}

	return r, g, b, nil
}

// RGBToHex renders a color as lower-case "#rrggbb".
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// LinearGradient interpolates length colors from startHex to finishHex,
// inclusive of both endpoints. A length of zero returns an empty slice.
func LinearGradient(startHex, finishHex string, length int) ([]string, error) {
	sr, sg, sb, err := HexToRGB(startHex)
	if err != nil {
		return nil, err
	}
	fr, fg, fb, err := HexToRGB(finishHex)
	if err != nil {
		return nil, err
	}

	if length <= 0 {
		return []string{}, nil
	}

	gradient := []string{strings.ToLower(startHex)}
	for step := 1; step < length; step++ {
		t := float64(step) / float64(length-1)
		gradient = append(gradient, RGBToHex(
			uint8(int(float64(sr)+t*float64(int(fr)-int(sr)))),
			uint8(int(float64(sg)+t*float64(int(fg)-int(sg)))),
			uint8(int(float64(sb)+t*float64(int(fb)-int(sb)))),
		))
	}

	return gradient, nil
}

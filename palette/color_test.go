package palette

import "testing"

func TestHexToRGB(t *testing.T) {
	r, g, b, err := HexToRGB("#000000")
	if err != nil {
		t.Fatal(err)
	}
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("parsed #000000 as %d,%d,%d", r, g, b)
	}

	r, g, b, err = HexToRGB("#FFFFFF")
	if err != nil {
		t.Fatal(err)
	}
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("parsed #FFFFFF as %d,%d,%d", r, g, b)
	}

	for _, bad := range []string{"cica", "ffffff", "#2093452", "#ggffff", ""} {
		if _, _, _, err := HexToRGB(bad); err == nil {
			t.Errorf("expected an error for %q", bad)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	if got := RGBToHex(0, 0, 0); got != "#000000" {
		t.Errorf("RGBToHex(0,0,0) = %q", got)
	}
	if got := RGBToHex(255, 211, 38); got != "#ffd326" {
		t.Errorf("RGBToHex(255,211,38) = %q", got)
	}
}

func TestLinearGradient(t *testing.T) {
	gradient, err := LinearGradient("#000000", "#FFFFFF", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(gradient) != 10 {
		t.Fatalf("gradient length %d, want 10", len(gradient))
	}
	if gradient[0] != "#000000" {
		t.Errorf("gradient starts with %q", gradient[0])
	}
	if gradient[9] != "#ffffff" {
		t.Errorf("gradient ends with %q", gradient[9])
	}

	gradient, err = LinearGradient("#000000", "#FFFFFF", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(gradient) != 0 {
		t.Errorf("zero-length gradient has %d entries", len(gradient))
	}

	if _, err := LinearGradient("#cica", "#FFFFFF", 10); err == nil {
		t.Error("expected an error for a malformed start color")
	}
	if _, err := LinearGradient("#000000", "#cica", 10); err == nil {
		t.Error("expected an error for a malformed finish color")
	}
}

func TestGradientIsMonotonic(t *testing.T) {
	gradient, err := LinearGradient("#6cb8cc", "#FFFFFF", 30)
	if err != nil {
		t.Fatal(err)
	}

	prev := -1
	for i, color := range gradient {
		r, g, b, err := HexToRGB(color)
		if err != nil {
			t.Fatal(err)
		}
		sum := int(r) + int(g) + int(b)
		if sum < prev {
			t.Errorf("gradient brightness decreased at step %d", i)
		}
		prev = sum
	}
}

package palette

import (
	"strings"
	"testing"

	"github.com/DSuveges/GenomePlotter/chunk"
)

func pickerColors() map[chunk.Feature]string {
	return map[chunk.Feature]string{
		chunk.FeatureCentromere:      "#9393ff",
		chunk.FeatureHeterochromatin: "#f9d2c2",
		chunk.FeatureIntergenic:      "#a3e0d1",
		chunk.FeatureExon:            "#ffd326",
		chunk.FeatureGene:            "#6cb8cc",
		chunk.FeatureDummy:           "#c0c0c0",
	}
}

func TestNewPickerRequiresEveryCategory(t *testing.T) {
	colors := pickerColors()
	delete(colors, chunk.FeatureExon)

	_, err := NewPicker(Options{Colors: colors, Width: 200, DarkStart: 0.75, DarkMax: 0.15})
	if err == nil {
		t.Fatal("expected an error for a missing category color")
	}
	if !strings.Contains(err.Error(), "exon") {
		t.Errorf("error does not name the missing category: %v", err)
	}
}

func TestNewPickerValidatesDarkening(t *testing.T) {
	for _, opt := range []Options{
		{Colors: pickerColors(), Width: 200, DarkStart: 1.5, DarkMax: 0.15},
		{Colors: pickerColors(), Width: 200, DarkStart: 0.75, DarkMax: 0},
		{Colors: pickerColors(), Width: 0, DarkStart: 0.75, DarkMax: 0.15},
	} {
		if _, err := NewPicker(opt); err == nil {
			t.Errorf("expected an error for options %+v", opt)
		}
	}
}

func TestPickFlatCategories(t *testing.T) {
	picker, err := NewPicker(Options{Colors: pickerColors(), Width: 200, DarkStart: 0.75, DarkMax: 0.15})
	if err != nil {
		t.Fatal(err)
	}

	// Centromere and heterochromatin bypass GC shading and positional
	// darkening entirely, even in the darkened zone.
	for _, feature := range []chunk.Feature{chunk.FeatureCentromere, chunk.FeatureHeterochromatin} {
		color, err := picker.Pick(feature, chunk.GC(0.9), 199)
		if err != nil {
			t.Fatal(err)
		}
		if color != pickerColors()[feature] {
			t.Errorf("%s: got %q, want flat base color %q", feature, color, pickerColors()[feature])
		}
	}
}

func TestPickShadesByGC(t *testing.T) {
	picker, err := NewPicker(Options{Colors: pickerColors(), Width: 200, DarkStart: 0.75, DarkMax: 0.15})
	if err != nil {
		t.Fatal(err)
	}

	low, err := picker.Pick(chunk.FeatureGene, chunk.GC(0.1), 0)
	if err != nil {
		t.Fatal(err)
	}
	high, err := picker.Pick(chunk.FeatureGene, chunk.GC(0.9), 0)
	if err != nil {
		t.Fatal(err)
	}

	if low == high {
		t.Errorf("same shade %q for GC 0.1 and 0.9", low)
	}

	full, err := picker.Pick(chunk.FeatureGene, chunk.GC(1.0), 0)
	if err != nil {
		t.Fatal(err)
	}
	if full != "#ffffff" {
		t.Errorf("GC 1.0 shade %q, want #ffffff", full)
	}
}

func TestPickRejectsOutOfRangeGC(t *testing.T) {
	picker, err := NewPicker(Options{Colors: pickerColors(), Width: 200, DarkStart: 0.75, DarkMax: 0.15})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := picker.Pick(chunk.FeatureGene, chunk.GC(1.2), 0); err == nil {
		t.Error("expected an error for GC ratio above 1")
	}
	if _, err := picker.Pick(chunk.Feature("promoter"), chunk.GC(0.5), 0); err == nil {
		t.Error("expected an error for an unknown category")
	}
}

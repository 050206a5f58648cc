package chunk

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGCRatioUnmarshalCSV(t *testing.T) {
	for _, field := range []string{"", "NA", "NaN", "nan", "None"} {
		var gc GCRatio
		if err := gc.UnmarshalCSV(field); err != nil {
			t.Fatalf("%q: %v", field, err)
		}
		if gc.Defined {
			t.Errorf("%q: expected an undefined ratio", field)
		}
	}

	var gc GCRatio
	if err := gc.UnmarshalCSV("0.42"); err != nil {
		t.Fatal(err)
	}
	if !gc.Defined || gc.Value != 0.42 {
		t.Errorf("got %+v, want defined 0.42", gc)
	}

	if err := gc.UnmarshalCSV("cica"); err == nil {
		t.Error("expected an error for a non-numeric field")
	}
}

func TestGCRatioMarshalCSV(t *testing.T) {
	if s, _ := UndefinedGC().MarshalCSV(); s != "NA" {
		t.Errorf("undefined ratio marshals as %q, want NA", s)
	}
	if s, _ := GC(0.5).MarshalCSV(); s != "0.5" {
		t.Errorf("0.5 marshals as %q", s)
	}
}

func TestValidateWindows(t *testing.T) {
	good := []GenomicWindow{
		{Chromosome: "1", Start: 0, End: 450, GC: GC(0.4)},
		{Chromosome: "1", Start: 450, End: 900, GC: UndefinedGC()},
		{Chromosome: "1", Start: 900, End: 1350, GC: GC(0.6)},
	}
	if err := ValidateWindows(good); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		windows []GenomicWindow
		msg     string
	}{
		{"empty", nil, "empty"},
		{
			"mixed chromosomes",
			[]GenomicWindow{
				{Chromosome: "1", Start: 0, End: 450, GC: GC(0.4)},
				{Chromosome: "2", Start: 450, End: 900, GC: GC(0.4)},
			},
			"chromosome",
		},
		{
			"inverted coordinates",
			[]GenomicWindow{{Chromosome: "1", Start: 450, End: 450, GC: GC(0.4)}},
			"start",
		},
		{
			"gap between windows",
			[]GenomicWindow{
				{Chromosome: "1", Start: 0, End: 450, GC: GC(0.4)},
				{Chromosome: "1", Start: 451, End: 900, GC: GC(0.4)},
			},
			"contiguity",
		},
		{
			"GC out of range",
			[]GenomicWindow{{Chromosome: "1", Start: 0, End: 450, GC: GC(1.3)}},
			"GC_ratio",
		},
	}

	for _, c := range cases {
		err := ValidateWindows(c.windows)
		if err == nil {
			t.Errorf("%s: expected an error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.msg)
		}
	}
}

func TestReadWindows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chr1.bed.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	rows := []string{
		"chr\tstart\tend\tGC_ratio",
		"1\t0\t450\t0.41",
		"1\t450\t900\tNA",
		"1\t900\t1350\t0.58",
	}
	if _, err := gz.Write([]byte(strings.Join(rows, "\n") + "\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	windows, err := ReadWindows(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	if windows[0].Start != 0 || windows[0].End != 450 || windows[0].GC.Value != 0.41 {
		t.Errorf("first window parsed as %+v", windows[0])
	}
	if windows[1].GC.Defined {
		t.Errorf("second window GC should be undefined, got %+v", windows[1].GC)
	}
}

package sequence

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/DSuveges/GenomePlotter/chunk"
)

func TestWindowGC(t *testing.T) {
	cases := []struct {
		seq            string
		minUnambiguous int
		want           float64
		defined        bool
	}{
		{"GCGC", 0, 1.0, true},
		{"ATAT", 0, 0.0, true},
		{"GCAT", 0, 0.5, true},
		{"gcat", 0, 0.5, true},
		// N bases are dropped from the denominator.
		{"GCNN", 0, 1.0, true},
		// Too few unambiguous bases left.
		{"GCNN", 3, 0, false},
		{"NNNN", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, c := range cases {
		got := WindowGC([]byte(c.seq), c.minUnambiguous)
		if got.Defined != c.defined {
			t.Errorf("%q min %d: defined=%v, want %v", c.seq, c.minUnambiguous, got.Defined, c.defined)
			continue
		}
		if c.defined && math.Abs(got.Value-c.want) > 1e-9 {
			t.Errorf("%q min %d: GC %f, want %f", c.seq, c.minUnambiguous, got.Value, c.want)
		}
	}
}

func TestChunkSequence(t *testing.T) {
	seq := []byte(strings.Repeat("GCAT", 30)) // 120 bases

	windows, err := ChunkSequence("1", seq, 50, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	if windows[2].Start != 100 || windows[2].End != 120 {
		t.Errorf("last window [%d,%d), want [100,120)", windows[2].Start, windows[2].End)
	}
	if err := chunk.ValidateWindows(windows); err != nil {
		t.Errorf("chunked windows fail validation: %v", err)
	}
	for i, w := range windows {
		if !w.GC.Defined || math.Abs(w.GC.Value-0.5) > 1e-9 {
			t.Errorf("window %d: GC %+v, want defined 0.5", i, w.GC)
		}
	}
}

func TestChunkSequenceUndefinedWindows(t *testing.T) {
	// First window all N, second window half N half real sequence.
	seq := append(bytes.Repeat([]byte{'N'}, 50), []byte(strings.Repeat("N", 25)+strings.Repeat("GC", 13))...)

	windows, err := ChunkSequence("1", seq[:100], 50, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if windows[0].GC.Defined {
		t.Error("all-N window should have undefined GC")
	}
	// 25 unambiguous bases out of 50 is exactly at tolerance.
	if !windows[1].GC.Defined {
		t.Error("window at the tolerance threshold should have defined GC")
	}
}

func TestChunkSequenceRejectsBadParameters(t *testing.T) {
	if _, err := ChunkSequence("1", []byte("GCAT"), 0, 0.5); err == nil {
		t.Error("expected an error for zero chunk size")
	}
	if _, err := ChunkSequence("1", []byte("GCAT"), 10, 1.5); err == nil {
		t.Error("expected an error for tolerance above 1")
	}
}

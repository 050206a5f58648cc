// Package sequence turns raw chromosome sequence into fixed-size genomic
// windows with per-window GC content, marking windows with too many
// unsequenced bases as undefined.
package sequence

import (
	"fmt"

	"github.com/DSuveges/GenomePlotter/chunk"
)

// WindowGC computes the GC ratio of one window's sequence. Ambiguous bases
// (N) are dropped before the ratio is taken; when fewer than minUnambiguous
// bases remain, or none at all, the ratio is undefined rather than a division
// by zero.
func WindowGC(seq []byte, minUnambiguous int) chunk.GCRatio {
	var gc, unambiguous int
	for _, b := range seq {
		switch b {
		case 'G', 'C', 'g', 'c':
			gc++
			unambiguous++
		case 'N', 'n':
		default:
			unambiguous++
		}
	}

	if unambiguous == 0 || unambiguous < minUnambiguous {
		return chunk.UndefinedGC()
	}

	return chunk.GC(float64(gc) / float64(unambiguous))
}

// ChunkSequence tiles a chromosome's sequence into contiguous windows of
// chunkSize bases (the last window may be shorter) and computes GC content
// for each. tolerance is the fraction of the chunk size that must remain
// after dropping ambiguous bases for the GC ratio to be defined.
func ChunkSequence(chromosome string, seq []byte, chunkSize int, tolerance float64) ([]chunk.GenomicWindow, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if tolerance < 0 || tolerance > 1 {
		return nil, fmt.Errorf("tolerance %f outside [0,1]", tolerance)
	}

	minUnambiguous := int(float64(chunkSize) * tolerance)

	windows := make([]chunk.GenomicWindow, 0, len(seq)/chunkSize+1)
	for start := 0; start < len(seq); start += chunkSize {
		end := start + chunkSize
		if end > len(seq) {
			end = len(seq)
		}

		windows = append(windows, chunk.GenomicWindow{
			Chromosome: chromosome,
			Start:      start,
			End:        end,
			GC:         WindowGC(seq[start:end], minUnambiguous),
		})
	}

	return windows, nil
}

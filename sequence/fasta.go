package sequence

import (
	"io"
	"log"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/carbocation/pfx"

	genomeplotter "github.com/DSuveges/GenomePlotter"
	"github.com/DSuveges/GenomePlotter/chunk"
)

// ProcessFasta streams a (multi-)FASTA genome and calls emit once per
// canonical chromosome with that chromosome's chunked windows. Scaffolds and
// patch contigs are skipped. The sequence is never held for more than one
// chromosome at a time.
func ProcessFasta(in io.Reader, chunkSize int, tolerance float64, emit func(chromosome string, windows []chunk.GenomicWindow) error) error {
	t := linear.NewSeq("", nil, alphabet.DNAredundant)
	sc := seqio.NewScanner(fasta.NewReader(in, t))

	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		name := genomeplotter.NormalizeChromosome(s.Name())

		if !genomeplotter.IsCanonicalChromosome(name) {
			log.Println("Skipping sequence", s.Name())
			continue
		}

		seq := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			seq[i] = byte(l)
		}

		windows, err := ChunkSequence(name, seq, chunkSize, tolerance)
		if err != nil {
			return pfx.Err(err)
		}

		log.Printf("Chromosome %s: %d windows\n", name, len(windows))

		if err := emit(name, windows); err != nil {
			return pfx.Err(err)
		}
	}

	return pfx.Err(sc.Error())
}

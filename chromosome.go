package genomeplotter

import (
	"strconv"
	"strings"
)

// NormalizeChromosome strips any UCSC-style "chr" prefix so that chromosome
// names compare equal across the GENCODE, cytoband, and GWAS inputs, which
// disagree on the prefix.
func NormalizeChromosome(name string) string {
	return strings.TrimPrefix(name, "chr")
}

// IsCanonicalChromosome reports whether name (normalized) is one of the
// autosomes, chrX, chrY, or the mitochondrial chromosome. Scaffolds and patch
// contigs carry longer names and are skipped by every stage of the pipeline.
func IsCanonicalChromosome(name string) bool {
	name = NormalizeChromosome(name)

	switch name {
	case "X", "Y", "MT", "M":
		return true
	}

	n, err := strconv.Atoi(name)
	if err != nil {
		return false
	}

	return n >= 1 && n <= 22
}

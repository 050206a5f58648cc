// gwasdensity summarizes how GWAS hits spread along a chromosome: it buckets
// the hits into fixed-size chunks, prints summary statistics, and renders the
// per-chunk density as a chart.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/DSuveges/GenomePlotter/annotation"
	_ "github.com/DSuveges/GenomePlotter/compileinfoprint"
)

func main() {
	var (
		gwasFile   string
		chromosome string
		chunkSize  int
		outName    string
	)

	flag.StringVar(&gwasFile, "gwas", "", "Path to the processed GWAS TSV.")
	flag.StringVar(&chromosome, "chromosome", "", "Chromosome to summarize.")
	flag.IntVar(&chunkSize, "chunksize", 450, "Chunk length in base pairs.")
	flag.StringVar(&outName, "out", "gwas_density.png", "Output chart path.")
	flag.Parse()

	if gwasFile == "" || chromosome == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	hits, err := annotation.ReadGwas(gwasFile)
	if err != nil {
		log.Fatalln(err)
	}

	hits = annotation.GwasChromosome(hits, chromosome)
	if len(hits) == 0 {
		log.Fatalf("No GWAS hits found on chromosome %s\n", chromosome)
	}
	log.Println("Hits on chromosome", chromosome+":", len(hits))

	density := chunkDensity(hits, chunkSize)

	mean, _ := stats.Mean(density)
	median, _ := stats.Median(density)
	max, _ := stats.Max(density)
	log.Printf("Hits per occupied chunk: mean %.2f, median %.1f, max %.0f\n", mean, median, max)

	if err := renderDensity(density, outName); err != nil {
		log.Fatalln(err)
	}
	log.Println("Saved chart:", outName)
}

// chunkDensity counts hits per chunk index, returning the counts for every
// chunk from zero through the last occupied one.
func chunkDensity(hits []annotation.GwasHit, chunkSize int) []float64 {
	counts := make(map[int]int)
	maxChunk := 0

	for _, h := range hits {
		c := h.Start / chunkSize
		counts[c]++
		if c > maxChunk {
			maxChunk = c
		}
	}

	density := make([]float64, maxChunk+1)
	for c, n := range counts {
		density[c] = float64(n)
	}

	return density
}

func renderDensity(density []float64, outName string) error {
	xValues := make([]float64, len(density))
	for i := range xValues {
		xValues[i] = float64(i)
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 256,
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xValues,
				YValues: density,
			},
		},
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer outFile.Close()

	_, err = buffer.WriteTo(outFile)

	return err
}

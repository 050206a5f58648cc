// fetchdata downloads and flattens the annotation datasets the plotter
// consumes: cytological bands from the Ensembl REST API and associations from
// the GWAS catalog download service. The genome sequence and GENCODE gtf are
// large FTP payloads and are handled by preparegenome and gencode2bed
// instead.
package main

import (
	"flag"
	"log"
	"os"

	_ "github.com/DSuveges/GenomePlotter/compileinfoprint"
)

const (
	defaultCytobandURL = "https://rest.ensembl.org/info/assembly/homo_sapiens?content-type=application/json&bands=1"
	defaultGwasURL     = "https://www.ebi.ac.uk/gwas/api/search/downloads/alternative"
)

func main() {
	var (
		outFolder   string
		cytobandURL string
		gwasURL     string
		skipGwas    bool
	)

	flag.StringVar(&outFolder, "out", "", "Folder for the processed annotation files.")
	flag.StringVar(&cytobandURL, "cytoband-url", defaultCytobandURL, "Ensembl REST endpoint for cytological bands.")
	flag.StringVar(&gwasURL, "gwas-url", defaultGwasURL, "GWAS catalog association download URL.")
	flag.BoolVar(&skipGwas, "skip-gwas", false, "Skip the (large) GWAS catalog download.")
	flag.Parse()

	if outFolder == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(outFolder); err != nil {
		log.Fatalln("Output folder is not accessible:", err)
	}

	log.Println("Fetching cytoband information.")
	assembly, err := FetchCytobands(cytobandURL, outFolder)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Current genome assembly:", assembly)

	if skipGwas {
		log.Println("Skipping GWAS catalog download.")
		return
	}

	log.Println("Fetching GWAS catalog associations.")
	n, err := FetchGwas(gwasURL, outFolder)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Number of processed associations:", n)
}

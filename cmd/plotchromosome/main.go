// plotchromosome renders one chromosome as a colored heat map: fixed-size
// genomic windows shaded by GC content and colored by feature category
// (exon/gene/intergenic/centromere/heterochromatin), with GWAS hits overlaid
// and the karyotype sidebar alongside.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DSuveges/GenomePlotter/annotation"
	"github.com/DSuveges/GenomePlotter/chunk"
	_ "github.com/DSuveges/GenomePlotter/compileinfoprint"
	"github.com/DSuveges/GenomePlotter/config"
	"github.com/DSuveges/GenomePlotter/integrator"
	"github.com/DSuveges/GenomePlotter/palette"
	"github.com/DSuveges/GenomePlotter/plotter"
)

func main() {
	var (
		chromosome string
		configFile string
		folder     string
		width      int
		pixel      int
		darkStart  float64
		darkMax    float64
		dummy      bool
		textFile   bool
		withLegend bool
	)

	flag.StringVar(&chromosome, "chromosome", "", "Chromosome to plot (e.g. 1, 13, X).")
	flag.StringVar(&configFile, "config", "", "Path to the JSON configuration file.")
	flag.StringVar(&folder, "folder", "", "Folder into which the plots are saved (overrides the config).")
	flag.IntVar(&width, "width", 0, "Number of chunks in one row (overrides the config).")
	flag.IntVar(&pixel, "pixel", 0, "Size of a plotted chunk in pixels (overrides the config).")
	flag.Float64Var(&darkStart, "darkstart", 0, "Fraction of the width where colors start darkening (overrides the config).")
	flag.Float64Var(&darkMax, "darkmax", 0, "Maximum darkening at the right edge (overrides the config).")
	flag.BoolVar(&dummy, "dummy", false, "Draw a featureless silhouette with identical dimensions instead of the chunks.")
	flag.BoolVar(&textFile, "svg", false, "Also save the assembled plot as an SVG text file.")
	flag.BoolVar(&withLegend, "legend", false, "Also save a color legend next to the plot.")
	flag.Parse()

	if chromosome == "" || configFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Parse(configFile)
	if err != nil {
		log.Fatalln(err)
	}

	// Command line overrides on top of the config file.
	if width > 0 {
		cfg.PlotParameters.Width = width
	}
	if pixel > 0 {
		cfg.PlotParameters.PixelSize = pixel
	}
	if darkStart > 0 {
		cfg.PlotParameters.DarkStart = darkStart
	}
	if darkMax > 0 {
		cfg.PlotParameters.DarkMax = darkMax
	}
	if folder != "" {
		cfg.BasicParameters.PlotFolder = folder
	}

	log.Println("Generating plot for chromosome", chromosome)
	log.Println("Chunks per row:", cfg.PlotParameters.Width, "pixel size:", cfg.PlotParameters.PixelSize)

	classified, err := classify(cfg, chromosome, dummy)
	if err != nil {
		log.Fatalln(err)
	}

	if err := render(cfg, chromosome, classified, dummy, textFile, withLegend); err != nil {
		log.Fatalln(err)
	}

	log.Println("All done.")
}

func classify(cfg config.Config, chromosome string, dummy bool) ([]chunk.ClassifiedWindow, error) {
	windows, err := chunk.ReadWindows(cfg.ChromosomeFile(chromosome))
	if err != nil {
		return nil, err
	}
	log.Println("Number of genome chunks:", len(windows))

	picker, err := palette.NewPicker(cfg.PickerOptions())
	if err != nil {
		return nil, err
	}

	cytobands, err := annotation.ReadCytobands(cfg.DataFiles.CytobandFile)
	if err != nil {
		return nil, err
	}

	if dummy {
		var centromeres []annotation.IntervalFeature
		if centromere, ok := annotation.CentromereSpan(cytobands, chromosome); ok {
			centromeres = append(centromeres, centromere)
		}

		return integrator.ClassifyDummy(windows, centromeres, picker, cfg.PlotParameters.Width)
	}

	gencode, err := annotation.ReadGencode(cfg.DataFiles.GencodeFile)
	if err != nil {
		return nil, err
	}
	log.Println("Number of GENCODE annotations in the genome:", len(gencode))

	gwas, err := annotation.ReadGwas(cfg.DataFiles.GwasFile)
	if err != nil {
		return nil, err
	}
	log.Println("Number of GWAS associations in the genome:", len(gwas))

	data := integrator.ChromosomeDatasets(integrator.GenomeInput{
		Gencode:  gencode,
		Cytoband: cytobands,
		GwasHits: gwas,
	}, chromosome)

	log.Println("Integrating data...")

	return integrator.Classify(windows, data, picker, cfg.PlotParameters.Width)
}

func render(cfg config.Config, chromosome string, classified []chunk.ClassifiedWindow, dummy, textFile, withLegend bool) error {
	pixel := cfg.PlotParameters.PixelSize

	var drawing *plotter.SVG
	if dummy {
		drawing = plotter.DrawDummy(classified, pixel)
	} else {
		drawing = plotter.DrawChromosome(classified, pixel)
	}

	drawing.Merge(plotter.GwasOverlay(classified, pixel, cfg.ColorSchema.GwasPoint))

	outName := filepath.Join(cfg.BasicParameters.PlotFolder, fmt.Sprintf("chr%s.png", chromosome))
	if dummy {
		outName = filepath.Join(cfg.BasicParameters.PlotFolder, fmt.Sprintf("chr%s_dummy.png", chromosome))
	}

	log.Println("Saving image:", outName)
	if err := plotter.RasterizeChromosome(classified, pixel, cfg.ColorSchema.GwasPoint, outName); err != nil {
		return err
	}

	if textFile {
		cytobands, err := annotation.ReadCytobands(cfg.DataFiles.CytobandFile)
		if err != nil {
			return err
		}

		sidebar := plotter.CytobandSidebar(cytobands, chromosome, pixel,
			cfg.BasicParameters.ChunkSize, cfg.PlotParameters.Width, cfg.ColorSchema.CytobandColors)

		drawing.Group(sidebar.Width(), 0)
		drawing.Merge(sidebar)

		svgName := outName[:len(outName)-len("png")] + "svg"
		log.Println("Saving svg file:", svgName)
		if err := drawing.SaveSVG(svgName); err != nil {
			return err
		}
	}

	if withLegend {
		colors := make(map[chunk.Feature]string)
		for feature, color := range cfg.ColorSchema.ChromosomeColors {
			colors[chunk.Feature(feature)] = color
		}

		legend, err := plotter.DrawLegend(colors, pixel)
		if err != nil {
			return err
		}

		legendName := filepath.Join(cfg.BasicParameters.PlotFolder, "legend.svg")
		log.Println("Saving legend:", legendName)
		if err := legend.SaveSVG(legendName); err != nil {
			return err
		}
	}

	return nil
}

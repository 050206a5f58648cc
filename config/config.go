// Package config reads the plotter's JSON configuration: plot geometry,
// color schema, and the locations of the processed data files.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carbocation/pfx"

	genomeplotter "github.com/DSuveges/GenomePlotter"
	"github.com/DSuveges/GenomePlotter/chunk"
	"github.com/DSuveges/GenomePlotter/palette"
)

// BasicParameters drive the pre-processing stage.
type BasicParameters struct {
	ChunkSize        int     `json:"chunk_size"`
	MissingTolerance float64 `json:"missing_tolerance"`
	DataFolder       string  `json:"data_folder"`
	PlotFolder       string  `json:"plot_folder"`
}

// PlotParameters drive window layout and shading.
type PlotParameters struct {
	Width     int     `json:"width"`
	PixelSize int     `json:"pixel_size"`
	DarkStart float64 `json:"dark_start"`
	DarkMax   float64 `json:"dark_max"`
}

// ColorSchema names every color the plots use.
type ColorSchema struct {
	ChromosomeColors map[string]string `json:"chromosome_colors"`
	CytobandColors   map[string]string `json:"cytoband_colors"`
	GwasPoint        string            `json:"gwas_point"`
}

// DataFiles points at the processed inputs. ChromosomeFile may carry a %s
// placeholder substituted with the chromosome name.
type DataFiles struct {
	ChromosomeFile string `json:"chromosome_file"`
	GencodeFile    string `json:"gencode_file"`
	CytobandFile   string `json:"cytoband_file"`
	GwasFile       string `json:"gwas_file"`
}

type Config struct {
	ConfigPath string `json:"-"`

	BasicParameters BasicParameters `json:"basic_parameters"`
	PlotParameters  PlotParameters  `json:"plot_parameters"`
	ColorSchema     ColorSchema     `json:"color_schema"`
	DataFiles       DataFiles       `json:"data_files"`
}

// Parse reads and validates a JSON configuration file.
func Parse(path string) (Config, error) {
	out := Config{ConfigPath: path}

	f, err := os.Open(path)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}
		return out, pfx.Err(err)
	}

	// Internally, go uses lower case for all colors, so we will too (while
	// permitting the user to use mixed case)
	for k, v := range out.ColorSchema.ChromosomeColors {
		out.ColorSchema.ChromosomeColors[k] = strings.ToLower(v)
	}
	for k, v := range out.ColorSchema.CytobandColors {
		out.ColorSchema.CytobandColors[k] = strings.ToLower(v)
	}
	out.ColorSchema.GwasPoint = strings.ToLower(out.ColorSchema.GwasPoint)

	// Interpret ~ if present
	out.BasicParameters.DataFolder = genomeplotter.ExpandHome(out.BasicParameters.DataFolder)
	out.BasicParameters.PlotFolder = genomeplotter.ExpandHome(out.BasicParameters.PlotFolder)
	out.DataFiles.ChromosomeFile = genomeplotter.ExpandHome(out.DataFiles.ChromosomeFile)
	out.DataFiles.GencodeFile = genomeplotter.ExpandHome(out.DataFiles.GencodeFile)
	out.DataFiles.CytobandFile = genomeplotter.ExpandHome(out.DataFiles.CytobandFile)
	out.DataFiles.GwasFile = genomeplotter.ExpandHome(out.DataFiles.GwasFile)

	return out, out.Validate()
}

// Validate reports the first missing or malformed option by name. No silent
// defaults beyond the documented ones (gradient length).
func (c Config) Validate() error {
	if c.BasicParameters.ChunkSize <= 0 {
		return fmt.Errorf("option basic_parameters.chunk_size must be positive, got %d", c.BasicParameters.ChunkSize)
	}
	if c.PlotParameters.Width <= 0 {
		return fmt.Errorf("option plot_parameters.width must be positive, got %d", c.PlotParameters.Width)
	}
	if c.PlotParameters.PixelSize <= 0 {
		return fmt.Errorf("option plot_parameters.pixel_size must be positive, got %d", c.PlotParameters.PixelSize)
	}
	for name, v := range map[string]float64{
		"plot_parameters.dark_start": c.PlotParameters.DarkStart,
		"plot_parameters.dark_max":   c.PlotParameters.DarkMax,
	} {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("option %s must be between 0 and 1 exclusive, got %f", name, v)
		}
	}

	for _, feature := range []string{"centromere", "heterochromatin", "intergenic", "exon", "gene", "dummy"} {
		if _, ok := c.ColorSchema.ChromosomeColors[feature]; !ok {
			return fmt.Errorf("option color_schema.chromosome_colors.%s is missing", feature)
		}
	}
	if c.ColorSchema.GwasPoint == "" {
		return fmt.Errorf("option color_schema.gwas_point is missing")
	}

	return nil
}

// ChromosomeFile resolves the processed window file for one chromosome.
func (c Config) ChromosomeFile(chromosome string) string {
	if strings.Contains(c.DataFiles.ChromosomeFile, "%s") {
		return fmt.Sprintf(c.DataFiles.ChromosomeFile, chromosome)
	}

	return c.DataFiles.ChromosomeFile
}

// PickerOptions assembles the palette options from the configuration.
func (c Config) PickerOptions() palette.Options {
	colors := make(map[chunk.Feature]string, len(c.ColorSchema.ChromosomeColors))
	for feature, color := range c.ColorSchema.ChromosomeColors {
		colors[chunk.Feature(feature)] = color
	}

	return palette.Options{
		Colors:    colors,
		Width:     c.PlotParameters.Width,
		DarkStart: c.PlotParameters.DarkStart,
		DarkMax:   c.PlotParameters.DarkMax,
	}
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	genomeplotter "github.com/DSuveges/GenomePlotter"
)

// GtfFeature is one annotated row of a gtf file with its parsed attribute
// field. Coordinates stay 1-based inclusive as in the file.
type GtfFeature struct {
	Chromosome string
	Type       string
	Start      int
	End        int
	Strand     string
	Attributes map[string]string
}

// EachFeature streams the gtf file and calls fn for every feature row.
func EachFeature(filename string, fn func(GtfFeature) error) error {
	f, err := genomeplotter.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	for i := 0; ; i++ {
		line, err := r.ReadString('\n')
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("GTF 0-based row %d error %s: %s", i, err, line)
		}

		lineCandidate := strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(lineCandidate, "#") {
			continue
		}

		row := strings.Split(lineCandidate, "\t")
		if x := len(row); x < 9 {
			return fmt.Errorf("GTF 0-based row %d had %d columns, expected 9", i, x)
		}

		start, err := strconv.Atoi(row[3])
		if err != nil {
			return fmt.Errorf("GTF 0-based row %d: bad start %q", i, row[3])
		}
		end, err := strconv.Atoi(row[4])
		if err != nil {
			return fmt.Errorf("GTF 0-based row %d: bad end %q", i, row[4])
		}

		attributes, err := ParseAttributes(row[8])
		if err != nil {
			return fmt.Errorf("Line %d: %s (%+v)", i, err, row[8])
		}

		feature := GtfFeature{
			Chromosome: row[0],
			Type:       row[2],
			Start:      start,
			End:        end,
			Strand:     row[6],
			Attributes: attributes,
		}

		if err := fn(feature); err != nil {
			return err
		}
	}

	return nil
}

// ParseAttributes splits the semicolon-delimited gtf attribute field into a
// map, stripping the quotes around values.
func ParseAttributes(attr string) (map[string]string, error) {
	out := make(map[string]string)

	attributes := strings.Split(attr, ";")
	for i, attribute := range attributes {
		parts := strings.SplitN(strings.TrimSpace(attribute), " ", 2)
		if x := len(parts); x < 2 {
			// Line ends in a semicolon
			break
		} else if x != 2 {
			return nil, fmt.Errorf("Expected 2 parts; attribute %d had %d (%+v)", i, x, parts)
		}

		out[parts[0]] = strings.Trim(parts[1], "\"")
	}

	return out, nil
}

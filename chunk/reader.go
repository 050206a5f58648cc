package chunk

import (
	"encoding/csv"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	genomeplotter "github.com/DSuveges/GenomePlotter"
)

// ReadWindows loads one chromosome's processed window file (gzipped TSV with
// chr/start/end/GC_ratio columns) and validates it.
func ReadWindows(path string) ([]GenomicWindow, error) {
	f, err := genomeplotter.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = '\t'

	windows := make([]GenomicWindow, 0)
	if err := gocsv.UnmarshalCSV(cr, &windows); err != nil {
		return nil, pfx.Err(err)
	}

	if err := ValidateWindows(windows); err != nil {
		return nil, pfx.Err(err)
	}

	return windows, nil
}

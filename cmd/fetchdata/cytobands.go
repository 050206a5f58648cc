package main

import (
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/carbocation/pfx"
)

// assemblyInfo mirrors the fields of the Ensembl assembly-info response that
// matter here.
type assemblyInfo struct {
	DefaultCoordSystemVersion string `json:"default_coord_system_version"`
	TopLevelRegion            []struct {
		Name  string `json:"name"`
		Bands []band `json:"bands"`
	} `json:"top_level_region"`
}

type band struct {
	ID            string `json:"id"`
	SeqRegionName string `json:"seq_region_name"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	Stain         string `json:"stain"`
}

// FetchCytobands pulls the cytological bands from the Ensembl REST API and
// writes the processed cytoband TSV. It returns the assembly build name.
func FetchCytobands(url, outFolder string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ensembl REST returned status %s", resp.Status)
	}

	var info assemblyInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", pfx.Err(err)
	}

	bands := make([]band, 0)
	for _, region := range info.TopLevelRegion {
		bands = append(bands, region.Bands...)
	}

	if len(bands) == 0 {
		return "", fmt.Errorf("no cytological bands in the Ensembl response")
	}

	sort.Slice(bands, func(i, j int) bool {
		if bands[i].SeqRegionName != bands[j].SeqRegionName {
			return bands[i].SeqRegionName < bands[j].SeqRegionName
		}
		return bands[i].Start < bands[j].Start
	})

	outName := filepath.Join(outFolder, "cytoBand.bed.gz")
	f, err := os.Create(outName)
	if err != nil {
		return "", pfx.Err(err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	w := csv.NewWriter(gz)
	w.Comma = '\t'
	defer w.Flush()

	w.Write([]string{"chr", "start", "end", "name", "type"})
	for _, b := range bands {
		w.Write([]string{b.SeqRegionName, strconv.Itoa(b.Start), strconv.Itoa(b.End), b.ID, b.Stain})
	}

	return info.DefaultCoordSystemVersion, nil
}
